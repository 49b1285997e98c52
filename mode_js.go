//go:build js && wasm

package main

// The browser build only ever runs the game
const defaultMode = "client"
