package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/secret-kiss/internal/config"
	"github.com/vovakirdan/secret-kiss/internal/core"
	"github.com/vovakirdan/secret-kiss/internal/storage"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.TickRate != 60 || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("TickRate=%d IdleTimeout=%v", cfg.TickRate, cfg.IdleTimeout)
	}
	if cfg.Kiss.StoreKey != config.DefaultStoreKey {
		t.Errorf("StoreKey = %q", cfg.Kiss.StoreKey)
	}
}

func TestUserBestKey(t *testing.T) {
	if got := userBestKey("best", "ayse"); got != "best:ayse" {
		t.Errorf("userBestKey = %q, expected best:ayse", got)
	}
	if got := userBestKey("best", ""); got != "best" {
		t.Errorf("userBestKey without user = %q, expected best", got)
	}
}

func TestBestStoreNil(t *testing.T) {
	if bestStore(nil) != nil {
		t.Error("a nil store must become a nil interface")
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "host_key")
	got, err := resolveHostKeyPath(path)
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestRemoteGamesKeepSeparateBests(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	cfg := DefaultSSHServerConfig()
	srv := &SSHServer{config: cfg, store: store, logger: log.New(io.Discard)}

	a := srv.newRemoteGame("ayse", 1, srv.logger)
	b := srv.newRemoteGame("mehmet", 2, srv.logger)
	a.Reset(core.DefaultConfig())
	b.Reset(core.DefaultConfig())

	a.Step(0, core.InputFrame{Actions: []core.Action{core.ActionPress}})
	a.Step(time.Second, core.NewInputFrame())

	if a.State().Best == 0 {
		t.Fatal("kissing should raise the best score")
	}
	if b.State().Best != 0 {
		t.Errorf("other user's best = %d, expected 0", b.State().Best)
	}
	if got, ok, err := store.Get(cfg.Kiss.StoreKey + ":ayse"); err != nil || !ok || got != a.State().Best {
		t.Errorf("stored best = %d, %v, %v; expected %d", got, ok, err, a.State().Best)
	}
	a.Close()
	b.Close()
}

func TestNewSSHServerWithoutListening(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		IdleTimeout: time.Minute,
		Kiss:        config.DefaultKissConfig(),
	})
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" || srv.Active() != 0 {
		t.Errorf("Addr=%q Active=%d", srv.Addr(), srv.Active())
	}
	if srv.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected the 60 fps default", srv.config.TickRate)
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
