package png_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pngkit/pkg/png"
	"github.com/joshuapare/pngkit/pkg/types"
)

// Example hides a message in a private chunk and reads it back.
func Example() {
	if err := png.Encode("image.png", "ruSt", "meet at noon", nil); err != nil {
		fmt.Printf("Encode failed: %v\n", err)
		return
	}
	msg, err := png.Decode("image.png", "ruSt", nil)
	if err != nil {
		fmt.Printf("Decode failed: %v\n", err)
		return
	}
	fmt.Println(string(msg))
}

// ExampleValidate demonstrates validation with strict limits.
func ExampleValidate() {
	err := png.Validate("upload.png", png.StrictLimits())
	if errors.Is(err, types.ErrLimitExceeded) {
		fmt.Println("file exceeds strict limits")
	}
}

// ExampleList prints every chunk type in a file.
func ExampleList() {
	infos, err := png.List("image.png", nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, c := range infos {
		fmt.Printf("%s %d\n", c.Type, c.Length)
	}
}
