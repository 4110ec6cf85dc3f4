//go:build picorv32 && !debug

package main

const debugBuild = false
