package homologsampler

import (
	"crypto/md5"
	"fmt"
	"io"
	"log"
	"os"
)

// RunLog records invocation parameters, per-gene messages and output
// file provenance to a log file in the output directory. A nil RunLog
// is valid and discards everything, which is how test mode runs.
type RunLog struct {
	f *os.File
	l *log.Logger
}

func NewRunLog(path string) (*RunLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &RunLog{f: f, l: log.New(f, "", log.Ldate|log.Ltime)}, nil
}

func (r *RunLog) Close() error {
	if r == nil {
		return nil
	}
	return r.f.Close()
}

// Message records a labelled log line.
func (r *RunLog) Message(label, format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.l.Printf("%s\t%s", label, fmt.Sprintf(format, args...))
}

// Params records the invocation parameters.
func (r *RunLog) Params(args string) {
	r.Message("params", "%s", args)
}

// InputFile records a file read during the run.
func (r *RunLog) InputFile(path string) {
	r.logFile("input_file", path)
}

// OutputFile records a file written during the run, with its md5 so a
// downstream reader can tell whether it was regenerated.
func (r *RunLog) OutputFile(path string) {
	r.logFile("output_file", path)
}

func (r *RunLog) logFile(label, path string) {
	if r == nil {
		return
	}
	sum, err := fileMD5(path)
	if err != nil {
		r.Message(label, "%s\tmd5=unavailable (%v)", path, err)
		return
	}
	r.Message(label, "%s\tmd5=%s", path, sum)
}

func fileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
