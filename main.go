// HashWord — stateless password derivation
//
// Derives a reproducible password from a secret master password and an
// ordered list of identifier strings. Nothing is ever stored: the same
// master password and identifiers always derive the same password.
//
// Pipeline:
// - Compose: master + NUL + identifier[0] + NUL + ... (NUL keeps ["a","b"]
//   distinct from ["ab"])
// - Normalize the whole plaintext to Unicode NFD
// - SHA-512 over the UTF-8 bytes
// - Read the 64-byte digest as one little-endian integer and render it in the
//   selected alphabet (94 printable ASCII / 62 alphanumeric / 10 numeric) by
//   repeated division, least-significant digit first
// - Truncate to the requested number of symbols
//
// The master password is collected interactively (hidden, entered twice), or
// once when --master-hash supplies a previously recorded hash to check the
// entry against, or from stdin when stdin is not a terminal.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"hashword/internal"

	"golang.org/x/term"
)

var version = "dev"

func usage() {
	prog := filepath.Base(os.Args[0])

	fmt.Println(internal.Banner(version))
	fmt.Println()

	fmt.Println(internal.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Printf("  %s %s\n", prog, internal.Style("[options] identifier [identifier ...]", internal.Cyan))
	fmt.Println()

	fmt.Println(internal.Style("Flags:", internal.Bold, internal.Blue))
	fmt.Println(internal.Style("  --length  --type  --master-hash  --print-hash  --mask  --qr  --self-test  --no-color  --version", internal.Cyan))
	fmt.Println()

	fmt.Println(internal.Style("Types:", internal.Bold, internal.Blue), "normal (94 printable ASCII), alphanumeric (0-9A-Za-z), numeric (0-9)")
	fmt.Println(internal.Style("Identifiers are ordered: a b and b a derive different passwords.", internal.Gray))
	fmt.Println()

	fmt.Println(internal.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Printf("  %s example.com\n", prog)
	fmt.Printf("  %s --length 20 --type alphanumeric example.com alice\n", prog)
	fmt.Printf("  %s --print-hash\n", prog)
	fmt.Printf("  %s --master-hash <hash> example.com\n", prog)
}

// resolveMaster collects the master password. TTY: double entry, or single
// entry checked against rememberedHash when one is supplied. Pipe: first line
// of stdin, no confirmation (the remembered hash is still checked if given).
func resolveMaster(rememberedHash string, mask bool) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		master, err := internal.ReadMasterLine(os.Stdin)
		if err != nil {
			return "", err
		}
		if rememberedHash != "" {
			if err := internal.VerifyMasterHash(master, rememberedHash); err != nil {
				return "", err
			}
		}
		return master, nil
	}

	if rememberedHash != "" {
		master, err := internal.PromptMasterOnce(mask)
		if err != nil {
			return "", err
		}
		if err := internal.VerifyMasterHash(master, rememberedHash); err != nil {
			return "", err
		}
		return master, nil
	}

	return internal.PromptMaster(mask)
}

func main() {
	length := flag.Int("length", 16, "Password length in symbols (must be positive)")
	kindFlag := flag.String("type", "normal", "Password alphabet: normal, alphanumeric, numeric")
	masterHash := flag.String("master-hash", "", "Previously recorded master password hash; verifies a single entry instead of prompting twice")
	printHash := flag.Bool("print-hash", false, "Print the master password hash (for later --master-hash) instead of a password")
	mask := flag.Bool("mask", true, "Show * while typing at the prompt (use --mask=false to disable)")
	qrFlag := flag.Bool("qr", false, "Also render the output as a terminal QR code")
	selfTest := flag.Bool("self-test", false, "Check the built-in known-answer vectors and exit")
	noColor := flag.Bool("no-color", false, "Disable colored output (TTY-safe)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	// Color enablement: default on for TTY unless --no-color
	internal.SetColorEnabled(!*noColor && term.IsTerminal(int(syscall.Stdout)))

	if *selfTest {
		if internal.RunSelfTest() > 0 {
			os.Exit(1)
		}
		return
	}

	kind, ok := internal.ParseKind(*kindFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown --type=%q (normal, alphanumeric, numeric)\n", *kindFlag)
		os.Exit(2)
	}
	// Reject a bad length before any prompting or hashing.
	if !*printHash && *length <= 0 {
		fmt.Fprintf(os.Stderr, "error: %v\n", internal.ErrInvalidLength)
		os.Exit(2)
	}

	identifiers := flag.Args()
	if len(identifiers) == 0 && !*printHash {
		usage()
		os.Exit(0)
	}

	master, err := resolveMaster(strings.TrimSpace(*masterHash), *mask)
	if err != nil {
		if errors.Is(err, internal.ErrMasterMismatch) {
			fmt.Fprintln(os.Stderr, "error: master password does not match")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if master == "" {
		fmt.Fprintf(os.Stderr, "error: %v\n", internal.ErrEmptyMaster)
		os.Exit(2)
	}

	var output string
	if *printHash {
		output, err = internal.DeriveMasterHash(master)
	} else {
		output, err = internal.DeriveVerified(master, identifiers, *length, kind)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println(output)

	if *qrFlag {
		code, qerr := internal.RenderQR(output)
		if qerr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", qerr)
			os.Exit(2)
		}
		fmt.Print(code)
	}
}
