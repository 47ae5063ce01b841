package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"go.dw1.io/x/fingerprint"
	"go.dw1.io/x/fingerprint/internal/file"
	"go.dw1.io/x/fingerprint/internal/json"
	"go.dw1.io/x/fingerprint/internal/regexp"
)

const (
	textDJB2   = "djb2"
	textWyhash = "wyhash"
	textXXHash = "xxhash"
)

type result struct {
	Func        string `json:"func"`
	Fingerprint int64  `json:"fingerprint"`
}

func listAction(c *cli.Context) error {
	v, err := readJSON(c)
	if err != nil {
		return err
	}

	hash, err := valueStrategy(c)
	if err != nil {
		return err
	}

	fp, err := fingerprint.HashListFunc(v, hash)
	if err != nil {
		return err
	}

	return printResult(c, "hash_list", fp)
}

func stringAction(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}

	data, err = mask(c, data)
	if err != nil {
		return err
	}

	if i := bytes.IndexByte(data, 0); i >= 0 {
		logger(c).Debug("input truncated at NUL byte", zap.Int("offset", i), zap.Int("size", len(data)))
	}

	fp, err := fingerprint.HashString(data)
	if err != nil {
		return err
	}

	return printResult(c, "hash_string", fp)
}

func counterAction(c *cli.Context) error {
	v, err := readJSON(c)
	if err != nil {
		return err
	}

	hash, err := valueStrategy(c)
	if err != nil {
		return err
	}

	fp, err := fingerprint.HashCounterFunc(v, hash)
	if err != nil {
		return err
	}

	return printResult(c, "hash_counter", fp)
}

func tupleAction(c *cli.Context) error {
	v, err := readJSON(c)
	if err != nil {
		return err
	}

	elems, ok := v.([]any)
	if !ok {
		return fmt.Errorf("tuple: %w (%T)", fingerprint.ErrNotSequence, v)
	}

	hash, err := valueStrategy(c)
	if err != nil {
		return err
	}

	hashes := make([]int64, len(elems))
	for i, e := range elems {
		if hashes[i], err = hash(e); err != nil {
			return fmt.Errorf("tuple: element %d: %w: %w", i, fingerprint.ErrUnhashable, err)
		}
	}

	return printResult(c, "tuple", fingerprint.Tuple(hashes...))
}

// mask replaces every match of the --mask patterns with "?", in flag order.
func mask(c *cli.Context, data []byte) ([]byte, error) {
	patterns := c.StringSlice("mask")
	if len(patterns) == 0 {
		return data, nil
	}

	text := string(data)
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid mask %q: %w", pattern, err)
		}

		if !re.MatchString(text) {
			logger(c).Debug("mask matched nothing", zap.Stringer("pattern", re))
			continue
		}

		text = re.ReplaceAllString(text, "?")
		logger(c).Debug("applied mask", zap.Stringer("pattern", re))
	}

	return []byte(text), nil
}

// valueStrategy builds the element strategy selected by --text-hash.
func valueStrategy(c *cli.Context) (fingerprint.Func[any], error) {
	var text fingerprint.Func[string]
	switch name := c.String("text-hash"); name {
	case textDJB2:
		text = fingerprint.Text
	case textWyhash:
		text = fingerprint.WyHash(c.Uint64("seed"))
	case textXXHash:
		text = fingerprint.XXHash
	default:
		return nil, fmt.Errorf("unknown text hash %q", name)
	}

	logger(c).Debug("selected text strategy", zap.String("text-hash", c.String("text-hash")))
	return fingerprint.ValueWith(text), nil
}

func readJSON(c *cli.Context) (any, error) {
	data, err := readInput(c)
	if err != nil {
		return nil, err
	}

	v, err := json.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON input: %w", err)
	}

	return v, nil
}

func readInput(c *cli.Context) ([]byte, error) {
	log := logger(c)

	if c.Args().Present() {
		log.Debug("reading input from argument")
		return []byte(c.Args().First()), nil
	}

	if name := c.String("file"); name != "" {
		log.Debug("reading input from file", zap.String("file", name))
		data, err := file.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return data, nil
	}

	log.Debug("reading input from stdin")
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return data, nil
}

func printResult(c *cli.Context, fn string, fp int64) error {
	logger(c).Debug("computed fingerprint", zap.String("func", fn), zap.Int64("fingerprint", fp))

	if !c.Bool("json") {
		_, err := fmt.Fprintln(c.App.Writer, fp)
		return err
	}

	out, err := json.Marshal(result{Func: fn, Fingerprint: fp})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.App.Writer, "%s\n", out)
	return err
}
