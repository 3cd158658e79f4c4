package internal

import "fmt"

// Built-in fixtures. The derivation algorithm has no tolerance for drift: a
// single wrong byte anywhere in the pipeline changes every output, so these
// known-good vectors are checked end to end by --self-test.
type passwordFixture struct {
	name        string
	master      string
	identifiers []string
	length      int
	kind        Kind
	want        string
}

type masterHashFixture struct {
	name   string
	master string
	want   string
}

const masterHashPassword = "VNcvd6qzEJUgV7c9ZvpKGLD4JBYopsjo5JNrO2vg3tg6VMTi4N78tKfzMRTy4sqzyc0Yad3qYk4tlSqJowaYHV"

// Both Unicode spellings of "éü" must hash identically.
const masterHashAccented = "uMNyJLWIi6Pw5dOKkELNeeJPvhpBEzIUzuRGEyEsSgi2MhO6bCypjTdHuNWKAAxCbEwZT1omNyV14cHXN6lpnB"

var passwordFixtures = []passwordFixture{
	{
		name:        "normal, length 15",
		master:      "password",
		identifiers: []string{"example.com"},
		length:      15,
		kind:        KindNormal,
		want:        ";$C3x0VK#E`g;&_",
	},
	{
		name:        "normal, length 8 (prefix of length 15)",
		master:      "password",
		identifiers: []string{"example.com"},
		length:      8,
		kind:        KindNormal,
		want:        ";$C3x0VK",
	},
	{
		name:        "numeric, length 15",
		master:      "password",
		identifiers: []string{"example.com"},
		length:      15,
		kind:        KindNumeric,
		want:        "820488708921100",
	},
	{
		name:        "alphanumeric, length 15",
		master:      "password",
		identifiers: []string{"example.com"},
		length:      15,
		kind:        KindAlphanumeric,
		want:        "kHqOsyblj8pg9vn",
	},
	{
		name:        "two identifiers, length beyond encoding",
		master:      "Master Password",
		identifiers: []string{"identifier0", "identifier1"},
		length:      1000,
		kind:        KindNormal,
		want:        "sozCeWVdA*'B&*Ad<uxh\\0B[p4J+Lo!`FR,c&N1O(I;c)QehTS1wk0tFWzad[/]\\>^eU<`Yj@8)>\"V",
	},
}

var masterHashFixtures = []masterHashFixture{
	{name: "master hash", master: "password", want: masterHashPassword},
	{name: "master hash, precomposed accents", master: "éü", want: masterHashAccented},
	{name: "master hash, decomposed accents", master: "éü", want: masterHashAccented},
}

// RunSelfTest derives every built-in fixture, prints a styled PASS/FAIL line
// per vector, and returns the number of failures.
func RunSelfTest() int {
	failed := 0

	check := func(name, got, want string, err error) {
		switch {
		case err != nil:
			fmt.Printf("  %s %s: %v\n", Style("FAILED", Bold, Red), name, err)
			failed++
		case got != want:
			fmt.Printf("  %s %s\n", Style("FAILED", Bold, Red), name)
			fmt.Printf("         have %q\n", got)
			fmt.Printf("         want %q\n", want)
			failed++
		default:
			fmt.Printf("  %s %s\n", Style("PASSED", Bold, Green), name)
		}
	}

	fmt.Println(Style("Self-test: password derivation", Bold, Blue))
	for _, f := range passwordFixtures {
		got, err := DerivePassword(f.master, f.identifiers, f.length, f.kind)
		check(f.name, got, f.want, err)
	}

	fmt.Println(Style("Self-test: master password hashes", Bold, Blue))
	for _, f := range masterHashFixtures {
		got, err := DeriveMasterHash(f.master)
		check(f.name, got, f.want, err)
	}

	total := len(passwordFixtures) + len(masterHashFixtures)
	summary := fmt.Sprintf("Total: %d, Failed: %d", total, failed)
	if failed > 0 {
		fmt.Println(Style(summary, Bold, Red))
	} else {
		fmt.Println(Style(summary, Bold))
	}
	return failed
}
