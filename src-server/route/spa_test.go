package route_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"planboard/src-server/route"
	"planboard/src-server/storage"
	"planboard/src-server/utils"
)

func TestSPA(t *testing.T) {
	dir := t.TempDir()
	// large enough that ServeContent copies it in several chunks
	index := bytes.Repeat([]byte("<p>planboard</p>\n"), 16*1024)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), index, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SEED_FILE", "")
	t.Setenv("STATIC_WEB_CLIENT_DIR", dir)
	as := utils.NewAppStateWithStorage(utils.NewConfig(), storage.NewMemory(), func() time.Time { return clock })
	as.LoadStores(context.Background())
	h := route.NewHandler(as)

	func() {
		rec := do(h, "GET", "/app.js", "")
		if rec.Code != http.StatusOK || rec.Body.String() != "console.log(1)" {
			t.Errorf("expected app.js, got %d %q", rec.Code, rec.Body.String())
		}
	}()

	// case: concurrent client-side routes all get the full index
	func() {
		const n = 50
		var wg sync.WaitGroup
		bodies := make([][]byte, n)
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest("GET", "/some/client/route", nil))
				codes[i] = rec.Code
				bodies[i] = rec.Body.Bytes()
			}()
		}
		wg.Wait()
		for i := range n {
			if codes[i] != http.StatusOK || !bytes.Equal(bodies[i], index) {
				t.Errorf("request %d: status %d, got %d of %d bytes intact", i, codes[i], len(bodies[i]), len(index))
			}
		}
	}()
}
