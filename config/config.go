package config

import "github.com/spf13/viper"

var (
	KeyStoreDriver       = "store.driver"
	KeyStorePath         = "store.path"
	KeyServerAddress     = "server.address"
	KeyServerUploadRate  = "server.upload-rate"
	KeyServerUploadBurst = "server.upload-burst"
	KeyMapCenterLat      = "map.center-lat"
	KeyMapCenterLon      = "map.center-lon"
	KeyMapZoom           = "map.zoom"
	KeyMapTiles          = "map.tiles"
)

// SetDefaults registers the default value of every configuration key.
func SetDefaults() {
	viper.SetDefault(KeyStoreDriver, "json")
	viper.SetDefault(KeyStorePath, DefaultRoutesFile())
	viper.SetDefault(KeyServerAddress, ":8000")
	viper.SetDefault(KeyServerUploadRate, 2.0)
	viper.SetDefault(KeyServerUploadBurst, 5)
	// Center of the continental US.
	viper.SetDefault(KeyMapCenterLat, 39.8283)
	viper.SetDefault(KeyMapCenterLon, -98.5795)
	viper.SetDefault(KeyMapZoom, 4)
	viper.SetDefault(KeyMapTiles, "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png")
}

func StoreDriver() string {
	return viper.GetString(KeyStoreDriver)
}

func StorePath() string {
	return viper.GetString(KeyStorePath)
}

func ServerAddress() string {
	return viper.GetString(KeyServerAddress)
}

// UploadRate is the number of upload requests per second the server accepts.
func UploadRate() float64 {
	return viper.GetFloat64(KeyServerUploadRate)
}

func UploadBurst() int {
	return viper.GetInt(KeyServerUploadBurst)
}

type Coords struct {
	Lat, Lon float64
}

// DefaultMapCenter is used as map center while there are no routes.
func DefaultMapCenter() Coords {
	return Coords{
		Lat: viper.GetFloat64(KeyMapCenterLat),
		Lon: viper.GetFloat64(KeyMapCenterLon),
	}
}

func DefaultMapZoom() int {
	return viper.GetInt(KeyMapZoom)
}

func MapTiles() string {
	return viper.GetString(KeyMapTiles)
}

func DefaultRoutesFile() string {
	return "routes.json"
}

func DefaultMapFile() string {
	return "routes.html"
}
