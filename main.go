package main

import (
	"github.com/sjzar/bnetrebrand/cmd/bnetrebrand"
)

func main() {
	bnetrebrand.Execute()
}
