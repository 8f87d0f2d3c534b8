package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"bordoodles-api/internal/adapters/blob/localfs"
	"bordoodles-api/internal/router"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	if opts.Blobs == nil {
		st, err := localfs.New(t.TempDir(), "/")
		require.NoError(t, err)
		opts.Blobs = st
		opts.Static = st.Handler()
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PuppyLifecycle(t *testing.T) {
	ts := newServer(t, router.Options{})

	// 1) Crear
	st, body := doReq(t, ts.URL, "POST", "/api/puppies", map[string]any{
		"name":  "Rex",
		"breed": "Bordoodle",
	})
	require.Equal(t, http.StatusCreated, st, string(body))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, "Available", created["status"])
	require.Equal(t, []any{}, created["images"])
	require.Nil(t, created["price"])
	id := jsonID(t, created)

	// 2) Listar
	st, body = doReq(t, ts.URL, "GET", "/api/puppies", nil)
	require.Equal(t, http.StatusOK, st)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)

	// 3) Update parcial: sólo cambia price
	st, body = doReq(t, ts.URL, "PUT", "/api/puppies/"+id, map[string]any{"price": 1500})
	require.Equal(t, http.StatusOK, st, string(body))
	var updated map[string]any
	require.NoError(t, json.Unmarshal(body, &updated))
	require.EqualValues(t, 1500, updated["price"])
	require.Equal(t, "Rex", updated["name"])
	require.Equal(t, "Available", updated["status"])

	// 4) Campo desconocido => 400 y sin cambios
	st, _ = doReq(t, ts.URL, "PUT", "/api/puppies/"+id, map[string]any{"owner": "x"})
	require.Equal(t, http.StatusBadRequest, st)

	// 5) Borrar
	st, _ = doReq(t, ts.URL, "DELETE", "/api/puppies/"+id, nil)
	require.Equal(t, http.StatusNoContent, st)

	st, body = doReq(t, ts.URL, "GET", "/api/puppies/"+id, nil)
	require.Equal(t, http.StatusNotFound, st)
	require.JSONEq(t, `{"error":"Puppy not found"}`, string(body))

	st, _ = doReq(t, ts.URL, "DELETE", "/api/puppies/"+id, nil)
	require.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_PuppyValidation(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, _ := doReq(t, ts.URL, "POST", "/api/puppies", map[string]any{"name": "Rex"})
	require.Equal(t, http.StatusBadRequest, st)

	st, _ = doReq(t, ts.URL, "GET", "/api/puppies/999", nil)
	require.Equal(t, http.StatusNotFound, st)

	st, body := doReq(t, ts.URL, "GET", "/api/puppies/abc", nil)
	require.Equal(t, http.StatusBadRequest, st)
	require.JSONEq(t, `{"error":"invalid id"}`, string(body))

	st, _ = doReq(t, ts.URL, "PUT", "/api/puppies/999", map[string]any{"price": 1})
	require.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_ParentLifecycle(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "POST", "/api/parents", map[string]any{
		"name":   "Duke",
		"role":   "Sire",
		"weight": "45 lbs",
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	id := jsonID(t, created)

	st, body = doReq(t, ts.URL, "PUT", "/api/parents/"+id, map[string]any{"color": "Merle"})
	require.Equal(t, http.StatusOK, st, string(body))
	var updated map[string]any
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Equal(t, "Merle", updated["color"])
	require.Equal(t, "45 lbs", updated["weight"])

	st, _ = doReq(t, ts.URL, "DELETE", "/api/parents/"+id, nil)
	require.Equal(t, http.StatusNoContent, st)

	st, body = doReq(t, ts.URL, "GET", "/api/parents/"+id, nil)
	require.Equal(t, http.StatusNotFound, st)
	require.JSONEq(t, `{"error":"Parent not found"}`, string(body))
}

func TestHTTP_UploadAndServe(t *testing.T) {
	ts := newServer(t, router.Options{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "rex.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("fake-png"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, strings.HasPrefix(out.URL, "/image-"), out.URL)
	require.True(t, strings.HasSuffix(out.URL, ".png"), out.URL)

	// El archivo queda servido en la raíz
	st, body := doReq(t, ts.URL, "GET", out.URL, nil)
	require.Equal(t, http.StatusOK, st)
	require.Equal(t, "fake-png", string(body))
}

func TestHTTP_MessagesRateLimited(t *testing.T) {
	ts := newServer(t, router.Options{
		ContactLimiter: rate.NewLimiter(rate.Every(time.Hour), 1),
	})

	st, body := doReq(t, ts.URL, "POST", "/api/messages", map[string]any{"name": "Ana", "message": "hola"})
	require.Equal(t, http.StatusOK, st)
	require.JSONEq(t, `{"success":true,"message":"Message received"}`, string(body))

	st, _ = doReq(t, ts.URL, "POST", "/api/messages", map[string]any{"name": "Ana"})
	require.Equal(t, http.StatusTooManyRequests, st)
}

func TestHTTP_MessagesAlwaysAcknowledgedWithoutLimiter(t *testing.T) {
	ts := newServer(t, router.Options{})

	for i := 0; i < 10; i++ {
		st, body := doReq(t, ts.URL, "POST", "/api/messages", map[string]any{"name": "Ana", "message": "hola"})
		require.Equal(t, http.StatusOK, st, "request %d", i)
		require.JSONEq(t, `{"success":true,"message":"Message received"}`, string(body))
	}
}

func TestHTTP_StringsRoundTripUntrimmed(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "POST", "/api/puppies", map[string]any{"name": " Rex ", "breed": "Bordoodle "})
	require.Equal(t, http.StatusCreated, st, string(body))
	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, " Rex ", created["name"])
	require.Equal(t, "Bordoodle ", created["breed"])

	st, body = doReq(t, ts.URL, "GET", "/api/puppies/"+jsonID(t, created), nil)
	require.Equal(t, http.StatusOK, st)
	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, " Rex ", got["name"])
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/", nil)
	require.Equal(t, http.StatusOK, st)
	require.Equal(t, "API is running! 🐶", string(body))

	st, _ = doReq(t, ts.URL, "GET", "/api/puppies", nil)
	require.Equal(t, http.StatusOK, st)

	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, st)
	require.Contains(t, string(body), "bordoodles_http_requests_total")
	require.Contains(t, string(body), `route="/api/puppies/"`)
}

func TestHTTP_CORSPreflight(t *testing.T) {
	ts := newServer(t, router.Options{CORSOrigins: []string{"https://bordoodles.example"}})

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/puppies", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://bordoodles.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "https://bordoodles.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

// ---------------- helpers ----------------

func jsonID(t *testing.T, m map[string]any) string {
	t.Helper()
	id, ok := m["id"].(float64)
	require.True(t, ok, "missing id in %v", m)
	return strconv.FormatInt(int64(id), 10)
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
