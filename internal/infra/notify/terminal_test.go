package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalNotifier(t *testing.T) {
	var out, errOut bytes.Buffer
	n := NewTerminalNotifier(&out, &errOut)

	n.Success("Item added to cart!")
	n.Error("Food item not found")

	assert.Equal(t, "Item added to cart!\n", out.String())
	assert.Equal(t, "error: Food item not found\n", errOut.String())
}
