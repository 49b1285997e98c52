//go:build js && wasm

package config

import "syscall/js"

// In the browser the game talks to the server that served the page.
func defaultServerURL() string {
	origin := js.Global().Get("location").Get("origin")
	if origin.Type() != js.TypeString {
		return "http://localhost:3000"
	}
	return origin.String()
}
