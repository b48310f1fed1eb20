package keyfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/healeycodes/niceware"
	"github.com/healeycodes/niceware/codec"
	"github.com/healeycodes/niceware/internal/frame"
)

// Ext is the extension for stored envelope files.
const Ext = ".nicekey"

// maxEnvelopeBytes caps what Load will hand to a decoder. Envelopes are
// tiny; anything near this size is not one of ours.
const maxEnvelopeBytes = 1 << 20

var (
	// ErrExists is returned by Save when the name is already taken.
	ErrExists = errors.New("keyfile: already exists")
	// ErrNotFound is returned by Load for a missing name.
	ErrNotFound = errors.New("keyfile: not found")
)

// Format selects the serialization for newly written files. Load detects
// the format from the container header, so a Store reads files written with
// any of them.
type Format byte

const (
	JSON    = Format(frame.FormatJSON)
	CBOR    = Format(frame.FormatCBOR)
	Msgpack = Format(frame.FormatMsgpack)
)

// codecs maps a container format byte to the codec for its payload. CBOR is
// deterministic so identical envelopes produce identical files.
var codecs = map[Format]codec.Codec[File]{
	JSON:    codec.JSONCodec[File]{},
	CBOR:    codec.MustCBOR[File](true),
	Msgpack: codec.Msgpack[File]{},
}

// Options configures a Store. Zero values get defaults from NewStore.
type Options struct {
	// Dir is the directory envelopes live in. Required; created 0700 if
	// missing.
	Dir string
	// Format is the serialization for newly written files. Default JSON.
	Format Format
	// Mode is the permission mode for new files. Default 0600: envelopes
	// hold key material.
	Mode fs.FileMode
	// Logger receives store events. Nil disables logging.
	Logger niceware.Logger
}

// Store reads and writes envelope files in one directory. Methods are safe
// for concurrent use on distinct names.
type Store struct {
	dir    string
	format Format
	mode   fs.FileMode
	log    niceware.Logger
}

// NewStore validates opts and creates the directory if needed.
func NewStore(opts Options) (*Store, error) {
	if opts.Dir == "" {
		return nil, errors.New("keyfile: Dir is required")
	}
	format := coalesce(opts.Format, JSON)
	if _, ok := codecs[format]; !ok {
		return nil, fmt.Errorf("keyfile: unknown format %d", format)
	}
	log := opts.Logger
	if log == nil {
		log = niceware.NopLogger{}
	}
	s := &Store{
		dir:    opts.Dir,
		format: format,
		mode:   coalesce(opts.Mode, fs.FileMode(0o600)),
		log:    log,
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, fmt.Errorf("keyfile: creating %s: %w", s.dir, err)
	}
	return s, nil
}

// path maps a name to its file path. Names are bare: no separators, no
// leading dot, so nothing can escape the store directory.
func (s *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("keyfile: invalid name %q", name)
	}
	return filepath.Join(s.dir, name+Ext), nil
}

// Save writes f under name. It refuses to overwrite; use Replace to rotate
// a key in place.
func (s *Store) Save(name string, f *File) error {
	return s.write(name, f, false)
}

// Replace is Save without the overwrite guard.
func (s *Store) Replace(name string, f *File) error {
	return s.write(name, f, true)
}

func (s *Store) write(name string, f *File, overwrite bool) error {
	if f == nil {
		return errors.New("keyfile: nil File")
	}
	p, err := s.path(name)
	if err != nil {
		return err
	}
	payload, err := codecs[s.format].Encode(*f)
	if err != nil {
		return fmt.Errorf("keyfile: encoding %s: %w", name, err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	fh, err := os.OpenFile(p, flags, s.mode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			s.log.Warn("keyfile exists", niceware.Fields{"name": name})
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		return fmt.Errorf("keyfile: opening %s: %w", p, err)
	}
	_, werr := fh.Write(frame.Encode(frame.Format(s.format), payload))
	cerr := fh.Close()
	if werr != nil {
		return fmt.Errorf("keyfile: writing %s: %w", p, werr)
	}
	if cerr != nil {
		return fmt.Errorf("keyfile: closing %s: %w", p, cerr)
	}

	s.log.Debug("keyfile written", niceware.Fields{
		"name":   name,
		"format": int(s.format),
		"bytes":  len(payload),
	})
	return nil
}

// Load reads, validates and decodes the envelope under name.
func (s *Store) Load(name string) (*File, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("keyfile: reading %s: %w", p, err)
	}

	wf, payload, err := frame.Decode(b)
	if err != nil {
		s.log.Error("keyfile container rejected", niceware.Fields{"name": name})
		return nil, err
	}
	format := Format(wf)
	c, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("keyfile: unknown format %d in %s", format, name)
	}
	lc := codec.LimitCodec[File]{Inner: c, MaxDecode: maxEnvelopeBytes}
	f, err := lc.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("keyfile: decoding %s: %w", name, err)
	}

	if f.Version != Version {
		return nil, fmt.Errorf("keyfile: unsupported version %d in %s", f.Version, name)
	}
	if len(f.Key)%2 != 0 {
		return nil, fmt.Errorf("keyfile: %s: %w", name, &niceware.OddLengthError{Size: len(f.Key)})
	}

	s.log.Debug("keyfile loaded", niceware.Fields{"name": name, "format": int(format)})
	return &f, nil
}

// List returns the names of stored envelopes. os.ReadDir sorts for us.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("keyfile: reading %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	return names, nil
}
