package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	if StoreDriver() != "json" {
		t.Fatalf("unexpected default driver %q", StoreDriver())
	}
	if StorePath() != "routes.json" {
		t.Fatalf("unexpected default path %q", StorePath())
	}
	if ServerAddress() != ":8000" {
		t.Fatalf("unexpected default address %q", ServerAddress())
	}
	if c := DefaultMapCenter(); c.Lat != 39.8283 || c.Lon != -98.5795 {
		t.Fatalf("unexpected default center %+v", c)
	}
	if DefaultMapZoom() != 4 {
		t.Fatalf("unexpected default zoom %d", DefaultMapZoom())
	}
	if UploadRate() != 2 || UploadBurst() != 5 {
		t.Fatalf("unexpected upload limits %v/%d", UploadRate(), UploadBurst())
	}
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set(KeyStoreDriver, "sqlite")
	viper.Set(KeyStorePath, "/var/lib/routes.db")
	viper.Set(KeyMapZoom, 7)

	if StoreDriver() != "sqlite" || StorePath() != "/var/lib/routes.db" {
		t.Fatalf("expected store overrides")
	}
	if DefaultMapZoom() != 7 {
		t.Fatalf("expected zoom override")
	}
}
