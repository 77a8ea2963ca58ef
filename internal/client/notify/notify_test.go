package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.Notify(Notification{Title: "Certificate Issued", Message: "Certificate created with ID: abc123"})
	n.Notify(Notification{Title: "Error", Message: "Failed to verify certificate", Variant: Destructive})

	out := buf.String()
	require.Contains(t, out, "Certificate Issued: Certificate created with ID: abc123")
	require.Contains(t, out, "!! Error: Failed to verify certificate")
}

func TestRecorder(t *testing.T) {
	var r Recorder

	_, ok := r.Last()
	require.False(t, ok)

	r.Notify(Notification{Title: "A"})
	r.Notify(Notification{Title: "B"})

	last, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, "B", last.Title)
	require.Equal(t, 2, r.Count())
}
