// Package textfile reads and writes UTF-8 text files. Every function opens
// its file itself and closes it before returning, on success or failure.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/korjavin/drills/errs"
)

// Encoding is the only character encoding these helpers read and write.
const Encoding = "utf-8"

// Write truncates path and writes text to it. It returns the number of
// characters written.
func Write(path, text string) (int, error) {
	return writeFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, text)
}

// WriteLines truncates path and writes lines back to back, adding no separators.
func WriteLines(path string, lines []string) (int, error) {
	return Write(path, strings.Join(lines, ""))
}

// Append writes text to the end of path, creating it if needed.
func Append(path, text string) (int, error) {
	return writeFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, text)
}

func writeFile(path string, flag int, text string) (n int, err error) {
	if !utf8.ValidString(text) {
		return 0, &errs.DecodeError{Source: path, Err: errors.New("text is not valid " + Encoding)}
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return 0, errs.NotFound(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			n, err = 0, fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return utf8.RuneCountInString(text), nil
}

// ReadChars returns the first n characters of path, or fewer if the file is
// shorter.
func ReadChars(path string, n int) (string, error) {
	var out strings.Builder
	err := withReader(path, func(r *bufio.Reader) error {
		for i := 0; i < n; i++ {
			ch, size, err := r.ReadRune()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if ch == utf8.RuneError && size == 1 {
				return &errs.DecodeError{Source: path, Err: errors.New("invalid " + Encoding + " sequence")}
			}
			out.WriteRune(ch)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// ReadLine returns the first line of path, including its newline.
func ReadLine(path string) (string, error) {
	var line string
	err := withReader(path, func(r *bufio.Reader) error {
		l, err := readLine(path, r)
		line = l
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	})
	return line, err
}

// ReadLines returns every line of path, each including its newline.
func ReadLines(path string) ([]string, error) {
	var lines []string
	err := EachLine(path, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// EachLine calls fn with every line of path, each including its newline.
// Iteration stops at the first error fn returns.
func EachLine(path string, fn func(line string) error) error {
	return withReader(path, func(r *bufio.Reader) error {
		for {
			line, err := readLine(path, r)
			if line != "" {
				if ferr := fn(line); ferr != nil {
					return ferr
				}
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
}

// Cat writes a header naming path followed by each of its lines.
func Cat(w io.Writer, path string) error {
	fmt.Fprintf(w, "Reading from `%s`...\n", path)
	return EachLine(path, func(line string) error {
		_, err := fmt.Fprintln(w, strings.TrimRight(line, "\r\n"))
		return err
	})
}

func readLine(path string, r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return line, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.ValidString(line) {
		return "", &errs.DecodeError{Source: path, Err: errors.New("invalid " + Encoding + " sequence")}
	}
	return line, err
}

func withReader(path string, fn func(r *bufio.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.NotFound(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return fn(bufio.NewReader(f))
}
