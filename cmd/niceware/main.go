// Command niceware converts bytes to passphrases and back from the shell.
// It can generate fresh passphrases, persist them as keyfiles, and convert
// between niceware passphrases and BIP39 mnemonics.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/healeycodes/niceware"
	"github.com/healeycodes/niceware/keyfile"
	zaplog "github.com/healeycodes/niceware/log/zap"
	"github.com/healeycodes/niceware/mnemonic"
)

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
}

var opts options

var formats = map[string]keyfile.Format{
	"json":    keyfile.JSON,
	"cbor":    keyfile.CBOR,
	"msgpack": keyfile.Msgpack,
}

func logger() niceware.Logger {
	if !opts.Verbose {
		return niceware.NopLogger{}
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "niceware: building logger: %v\n", err)
		return niceware.NopLogger{}
	}
	return zaplog.ZapLogger{L: zl}
}

type generateCmd struct {
	Words   int    `short:"w" long:"words" default:"8" description:"Number of words in the passphrase"`
	Comment string `short:"c" long:"comment" description:"Comment stored in the keyfile"`
	Dir     string `short:"d" long:"dir" description:"Keyfile directory"`
	Out     string `short:"o" long:"out" description:"Keyfile name to write (requires --dir)"`
	Format  string `short:"f" long:"format" default:"json" choice:"json" choice:"cbor" choice:"msgpack" description:"Keyfile serialization format"`
}

func (c *generateCmd) Execute(_ []string) error {
	words, err := niceware.GeneratePassphrase(c.Words)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(words, " "))

	if c.Out == "" {
		return nil
	}
	if c.Dir == "" {
		return fmt.Errorf("--out requires --dir")
	}
	key, err := niceware.PassphraseToBytes(words)
	if err != nil {
		return err
	}
	f, err := keyfile.New(key, c.Comment)
	if err != nil {
		return err
	}
	store, err := keyfile.NewStore(keyfile.Options{
		Dir:    c.Dir,
		Format: formats[c.Format],
		Logger: logger(),
	})
	if err != nil {
		return err
	}
	return store.Save(c.Out, f)
}

type encodeCmd struct {
	Args struct {
		Hex string `positional-arg-name:"hex" description:"Bytes to encode, in hex"`
	} `positional-args:"yes" required:"yes"`
}

func (c *encodeCmd) Execute(_ []string) error {
	b, err := hex.DecodeString(c.Args.Hex)
	if err != nil {
		return fmt.Errorf("decoding hex: %w", err)
	}
	words, err := niceware.BytesToPassphrase(b)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(words, " "))
	return nil
}

type decodeCmd struct {
	Args struct {
		Words []string `positional-arg-name:"word" description:"Passphrase words"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decodeCmd) Execute(_ []string) error {
	b, err := niceware.ParsePassphrase(strings.Join(c.Args.Words, " "))
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", b)
	return nil
}

type showCmd struct {
	Dir  string `short:"d" long:"dir" required:"yes" description:"Keyfile directory"`
	Args struct {
		Name string `positional-arg-name:"name" description:"Keyfile name"`
	} `positional-args:"yes" required:"yes"`
}

func (c *showCmd) Execute(_ []string) error {
	store, err := keyfile.NewStore(keyfile.Options{Dir: c.Dir, Logger: logger()})
	if err != nil {
		return err
	}
	f, err := store.Load(c.Args.Name)
	if err != nil {
		return err
	}
	words, err := f.Passphrase()
	if err != nil {
		return err
	}
	if f.Comment != "" {
		fmt.Printf("# %s\n", f.Comment)
	}
	fmt.Println(strings.Join(words, " "))
	return nil
}

type listCmd struct {
	Dir string `short:"d" long:"dir" required:"yes" description:"Keyfile directory"`
}

func (c *listCmd) Execute(_ []string) error {
	store, err := keyfile.NewStore(keyfile.Options{Dir: c.Dir, Logger: logger()})
	if err != nil {
		return err
	}
	names, err := store.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

type mnemonicCmd struct {
	Reverse bool `short:"r" long:"reverse" description:"Convert a BIP39 mnemonic back to a passphrase"`
	Args    struct {
		Words []string `positional-arg-name:"word" description:"Words to convert"`
	} `positional-args:"yes" required:"yes"`
}

func (c *mnemonicCmd) Execute(_ []string) error {
	in := strings.Join(c.Args.Words, " ")
	if c.Reverse {
		words, err := mnemonic.ToPassphrase(in)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(words, " "))
		return nil
	}
	b, err := niceware.ParsePassphrase(in)
	if err != nil {
		return err
	}
	m, err := mnemonic.FromBytes(b)
	if err != nil {
		return err
	}
	fmt.Println(m)
	return nil
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Passphrase encoding for byte sequences"

	cmds := []struct {
		name, short, long string
		cmd               any
	}{
		{"generate", "Generate a random passphrase",
			"Generate a passphrase from crypto/rand entropy, optionally writing a keyfile.", &generateCmd{}},
		{"encode", "Encode hex bytes as a passphrase",
			"Encode an even number of hex bytes as a passphrase, two bytes per word.", &encodeCmd{}},
		{"decode", "Decode a passphrase to hex bytes",
			"Decode passphrase words back to the bytes they encode, printed as hex.", &decodeCmd{}},
		{"show", "Print a stored keyfile",
			"Load a keyfile and print its passphrase and comment.", &showCmd{}},
		{"list", "List stored keyfiles",
			"List the keyfile names in a directory.", &listCmd{}},
		{"mnemonic", "Convert between passphrase and BIP39 mnemonic",
			"Re-render a passphrase as a BIP39 mnemonic, or the reverse with -r.", &mnemonicCmd{}},
	}
	for _, c := range cmds {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
