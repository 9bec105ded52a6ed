// Package fixtures holds captured API payloads shared by the package tests.
package fixtures

import (
	"embed"
	"fmt"
)

//go:embed testdata/*.json
var payloads embed.FS

func load(name string) string {
	b, err := payloads.ReadFile("testdata/" + name + ".json")
	if err != nil {
		panic(fmt.Sprintf("fixtures: %v", err))
	}
	return string(b)
}

// Each fixture is a single record as it appears inside a response's data field.
var (
	Game             = load("game")
	Category         = load("category")
	Mod              = load("mod")
	File             = load("file")
	MinecraftVersion = load("minecraft_version")
	ModLoader        = load("modloader")
)

// Data wraps a payload in the {"data": ...} envelope.
func Data(payload string) string {
	return `{"data":` + payload + `}`
}

// Page wraps a list payload in a paginated envelope.
func Page(payload string, index, pageSize, resultCount, totalCount int) string {
	return fmt.Sprintf(`{"data":%s,"pagination":{"index":%d,"pageSize":%d,"resultCount":%d,"totalCount":%d}}`,
		payload, index, pageSize, resultCount, totalCount)
}

// List joins payloads into a JSON array.
func List(payloads ...string) string {
	out := "["
	for i, p := range payloads {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out + "]"
}
