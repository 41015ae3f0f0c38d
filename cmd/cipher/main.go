package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"strings"

	"github.com/jpicht/cipherkit/lib/cipher"
	"github.com/miekg/dns"
)

var (
	transform = flag.String("t", "", "transform: xor, caesar, vigenere, subst, base64, rot13, atbash, reverse, domain")
	decode    = flag.Bool("d", false, "decrypt / decode instead of encrypt / encode (ignored by the self-inverse xor, rot13, atbash and reverse)")
	key       = flag.String("key", "", "key for xor and vigenere")
	shift     = flag.Int("shift", 3, "shift for caesar")
	seed      = flag.Int64("seed", 0, "table seed for subst")
	suffix    = flag.String("suffix", "", "suffix appended to domain output")
)

func check(err error) {
	if err != nil {
		failed(err)
	}
}

func failed(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Syntax:")
	fmt.Fprintf(os.Stderr, "    %s -t <transform> [options] [file]\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(1)
}

func input() []byte {
	if flag.NArg() > 1 {
		usage()
	}
	if flag.NArg() == 1 {
		data, err := ioutil.ReadFile(flag.Arg(0))
		check(err)
		return data
	}
	data, err := ioutil.ReadAll(os.Stdin)
	check(err)
	return data
}

func main() {
	flag.Parse()
	if *transform == "" {
		usage()
	}

	text := input()

	var (
		out []byte
		err error
	)

	switch *transform {
	case "xor":
		out, err = cipher.XorEncrypt(text, []byte(*key))
	case "caesar":
		if *decode {
			out = cipher.CaesarDecrypt(text, *shift)
		} else {
			out = cipher.CaesarEncrypt(text, *shift)
		}
	case "vigenere":
		if *decode {
			out, err = cipher.VigenereDecrypt(text, []byte(*key))
		} else {
			out, err = cipher.VigenereEncrypt(text, []byte(*key))
		}
	case "subst":
		table, reverse := cipher.GenerateSubstitutionTable(rand.New(rand.NewSource(*seed)))
		if *decode {
			out = cipher.SubstitutionDecrypt(text, reverse)
		} else {
			out = cipher.SubstitutionEncrypt(text, table)
		}
	case "base64":
		if *decode {
			out, err = cipher.Base64Decode(text)
		} else {
			out = cipher.Base64Encode(text)
		}
	case "rot13":
		out = cipher.Rot13Encrypt(text)
	case "atbash":
		out = cipher.AtbashEncrypt(text)
	case "reverse":
		out = cipher.ReverseEncrypt(text)
	case "domain":
		out, err = domain(text)
	default:
		usage()
	}
	check(err)

	os.Stdout.Write(out)
	if *transform == "domain" && !*decode {
		fmt.Println()
	}
}

// domain armors the input as a DNS name or, with -d, recovers the
// original bytes from one. The encoded name is validated before it is
// printed, a name that cannot go on the wire is an error here.
func domain(text []byte) ([]byte, error) {
	if *decode {
		payload := strings.TrimSpace(string(text))
		if *suffix != "" {
			payload = strings.TrimSuffix(payload, "."+*suffix)
		}
		return cipher.DomainDecode(payload)
	}

	name, err := cipher.DomainEncode(text)
	if err != nil {
		return nil, err
	}
	if *suffix != "" {
		name += "." + *suffix
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return nil, fmt.Errorf("encoded payload is not a valid domain name: %s", name)
	}
	return []byte(name), nil
}
