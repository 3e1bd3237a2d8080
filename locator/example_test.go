package locator_test

import (
	"fmt"

	"github.com/figtreehq/figtree/locator"
)

func ExampleParse() {
	loc, _ := locator.Parse("https://www.figma.com/design/Abc123/Checkout?node-id=42-7")
	fmt.Println(loc.FileKey)
	fmt.Println(loc.NodeID)
	// Output:
	// Abc123
	// 42:7
}

func ExampleFileKey() {
	key, _ := locator.FileKey("Abc123")
	fmt.Println(key)
	// Output:
	// Abc123
}
