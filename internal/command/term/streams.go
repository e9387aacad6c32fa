package term

import (
	"fmt"
	"io"
	"sync"
)

const separator = "------------------------------------------------------------------------------"

// Stream is a concurrency-safe output for terminal messages.
type Stream struct {
	stream io.Writer
	lock   sync.Mutex
}

func NewStream(out io.Writer) *Stream {
	return &Stream{stream: out}
}

func (s *Stream) Printf(format string, a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintf(s.stream, format, a...)
}

func (s *Stream) Println(a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintln(s.stream, a...)
}

// ModulePrintf prints a message that is prefixed with '<MODULE-NAME>: '
func (s *Stream) ModulePrintf(module fmt.Stringer, format string, a ...any) {
	prefix := Highlight(fmt.Sprintf("%s: ", module))

	s.Printf(prefix+format, a...)
}

// PrintSep prints a separator line
func (s *Stream) PrintSep() {
	s.Println(separator)
}

// ErrPrintln prints an error message for err, followed by a newline.
// If msg is not empty, it is printed before the error description, separated
// by a colon.
func (s *Stream) ErrPrintln(err error, msg ...any) {
	if len(msg) == 0 {
		s.Println(RedHighlight("ERROR:"), err.Error())
		return
	}

	wholeMsg := fmt.Sprint(msg...)
	s.Println(RedHighlight("ERROR:"), wholeMsg+": "+err.Error())
}

// ErrPrintf is like ErrPrintln but formats the message according to a format
// specifier.
func (s *Stream) ErrPrintf(err error, format string, a ...any) {
	s.ErrPrintln(err, fmt.Sprintf(format, a...))
}

// PrintErrln prints an error message followed by a newline.
func (s *Stream) PrintErrln(msg ...any) {
	s.Println(RedHighlight("ERROR:"), fmt.Sprint(msg...))
}

// PrintErrf prints an error message according to a format specifier.
func (s *Stream) PrintErrf(format string, a ...any) {
	s.PrintErrln(fmt.Sprintf(format, a...))
}

func (s *Stream) Write(p []byte) (n int, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.stream.Write(p)
}
