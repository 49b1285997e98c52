//go:build !(js && wasm)

package main

const defaultMode = "server"
