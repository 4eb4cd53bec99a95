// Command petra-plc-debug prints the YAML field tags of the engine's
// config structs, for checking a struct's on-the-wire name without
// cross-referencing the source.
package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/Lithos-Systems/petra-plc/internal/engine"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: petra-plc-debug <SignalConfig|BlockConfig> <FieldName>")
		os.Exit(1)
	}

	var t reflect.Type
	switch os.Args[1] {
	case "SignalConfig":
		t = reflect.TypeOf(engine.SignalConfig{})
	case "BlockConfig":
		t = reflect.TypeOf(engine.BlockConfig{})
	default:
		fmt.Printf("unknown struct %q\n", os.Args[1])
		os.Exit(1)
	}

	f, ok := t.FieldByName(os.Args[2])
	if !ok {
		fmt.Printf("no field %q on %s\n", os.Args[2], os.Args[1])
		os.Exit(1)
	}
	fmt.Printf("yaml:%q json:%q\n", f.Tag.Get("yaml"), f.Tag.Get("json"))
}
