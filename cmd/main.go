package main

import (
	"fmt"
	"os"

	uniqueres "github.com/cxw42/unique-resource"
)

func main() {
	f, err := os.CreateTemp("", "uniqueres-demo-*")
	if err != nil {
		fmt.Println("create temp:", err)
		return
	}

	h := uniqueres.Make(f, func(f *os.File) error {
		fmt.Println("removing", f.Name())
		name := f.Name()
		if err := f.Close(); err != nil {
			return err
		}
		return os.Remove(name)
	})
	defer func() {
		if err := h.Close(); err != nil {
			fmt.Println("cleanup:", err)
		}
	}()

	if _, err := h.Get().WriteString("scratch data\n"); err != nil {
		fmt.Println("write:", err)
		return
	}

	fmt.Println("wrote to", h.Get().Name())
}
