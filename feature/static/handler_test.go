package static_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"static-launcher/core/storage"
	"static-launcher/core/storage/mocks"
	"static-launcher/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeTree creates files under root from a path -> content map.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func setupTestApp(t *testing.T, root http.FileSystem, browse bool) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := static.NewHandler(root, browse, zap.NewNop())
	h.RegisterRoutes(app)
	return app
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHandler_ServesFile(t *testing.T) {
	dir := t.TempDir()
	content := "body { color: red; }\n"
	writeTree(t, dir, map[string]string{"css/site.css": content})

	app := setupTestApp(t, http.Dir(dir), true)

	resp, err := app.Test(httptest.NewRequest("GET", "/css/site.css", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Equal(t, content, readBody(t, resp))
}

func TestHandler_ServesBinaryByteIdentical(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 64*1024)
	for i := range data {
		data[i] = byte(i * 31)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), data, 0o644))

	app := setupTestApp(t, http.Dir(dir), true)

	resp, err := app.Test(httptest.NewRequest("GET", "/blob.bin", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, bytes.Equal(data, []byte(readBody(t, resp))))
}

func TestHandler_Head(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"index.html": "<h1>home</h1>"})

	app := setupTestApp(t, http.Dir(dir), true)

	resp, err := app.Test(httptest.NewRequest("HEAD", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, readBody(t, resp))
}

func TestHandler_NotFound(t *testing.T) {
	app := setupTestApp(t, http.Dir(t.TempDir()), true)

	for _, method := range []string{"GET", "HEAD"} {
		t.Run(method, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(method, "/nope.txt", nil))
			require.NoError(t, err)
			assert.Equal(t, 404, resp.StatusCode)
		})
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/missing/deeper/file.js", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "File not found", readBody(t, resp))
}

func TestHandler_DirectoryIndex(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":      "<h1>home</h1>",
		"docs/index.html": "<h1>docs</h1>",
	})

	app := setupTestApp(t, http.Dir(dir), true)

	tests := []struct {
		path string
		want string
	}{
		{"/", "<h1>home</h1>"},
		{"/docs", "<h1>docs</h1>"},
		{"/docs/", "<h1>docs</h1>"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			assert.Equal(t, tt.want, readBody(t, resp))
		})
	}
}

func TestHandler_DirectoryListing(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"assets/app.js":          "console.log(1)",
		"assets/logo.svg":        "<svg/>",
		"assets/fonts/mono.woff": "woff",
	})

	app := setupTestApp(t, http.Dir(dir), true)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body := readBody(t, resp)
	assert.Contains(t, body, "app.js")
	assert.Contains(t, body, "logo.svg")
	assert.Contains(t, body, "fonts")
	// Only immediate children are listed.
	assert.NotContains(t, body, "mono.woff")
}

func TestHandler_BrowseDisabled(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"assets/app.js": "console.log(1)"})

	app := setupTestApp(t, http.Dir(dir), false)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestHandler_UnsupportedMethods(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"index.html": "<h1>home</h1>"})

	app := setupTestApp(t, http.Dir(dir), true)

	for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
		t.Run(method, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(method, "/index.html", nil))
			require.NoError(t, err)
			assert.Equal(t, 501, resp.StatusCode)
			assert.Equal(t, "Unsupported method ('"+method+"')", readBody(t, resp))
		})
	}

	// Nothing was written.
	got, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>home</h1>", string(got))
}

func TestHandler_NoTraversal(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "site")
	writeTree(t, parent, map[string]string{
		"secret.txt":      "top secret",
		"site/index.html": "<h1>home</h1>",
	})

	app := setupTestApp(t, http.Dir(root), true)

	resp, err := app.Test(httptest.NewRequest("GET", "/../secret.txt", nil))
	require.NoError(t, err)
	assert.NotEqual(t, 200, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "top secret")
}

func TestHandler_BucketRoot(t *testing.T) {
	client := new(mocks.Client)
	page := "<h1>from bucket</h1>"

	client.On("StatObject", mock.Anything, "site", "www/about.html", mock.Anything).
		Return(minio.ObjectInfo{Key: "www/about.html", Size: int64(len(page)), LastModified: time.Now()}, nil)
	obj := mocks.NewObject([]byte(page))
	client.On("GetObject", mock.Anything, "site", "www/about.html", mock.Anything).
		Return(obj, nil)

	root := storage.NewFileSystem(context.Background(), client, "site", "www", time.Second)
	app := setupTestApp(t, root, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/about.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, page, readBody(t, resp))

	// The response writer closes the streamed object.
	assert.Eventually(t, obj.Closed, time.Second, 10*time.Millisecond)
}
