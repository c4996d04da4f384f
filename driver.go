package dawg

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// BuildFromFile is a convenience wrapper around Builder and Save: it
// opens inputPath as a UTF-8 line-oriented word list (one word per line,
// separated by '\n', empty lines skipped), inserts each line into a fresh
// Builder, finalizes it, and writes the result to outputPath.
//
// Lines must already be sorted in strictly ascending byte order and
// lowercased by the caller; word-list preprocessing is explicitly out of
// scope for this package (see the package's design notes). BuildFromFile
// fails immediately with ErrOrderViolation if it encounters a line that
// violates ordering, rather than silently sorting the input.
func BuildFromFile(inputPath, outputPath string, opts ...Option) (err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, in.Close())
	}()

	b := New(opts...)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if insertErr := b.Insert(line); insertErr != nil {
			return fmt.Errorf("dawg: building from %s: %w", inputPath, insertErr)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return fmt.Errorf("dawg: reading %s: %w", inputPath, scanErr)
	}

	g, buildErr := b.Finalize()
	if buildErr != nil {
		return buildErr
	}

	if _, saveErr := g.Save(outputPath); saveErr != nil {
		return fmt.Errorf("dawg: writing %s: %w", outputPath, saveErr)
	}

	return nil
}
