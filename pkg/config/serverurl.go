//go:build !(js && wasm)

package config

func defaultServerURL() string {
	return "http://localhost:3000"
}
