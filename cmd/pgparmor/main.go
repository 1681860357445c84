/*
Copyright 2026 The PGP-Armor Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command pgparmor dearmors and enarmors OpenPGP ASCII-Armor blocks on
// the command line, in the spirit of gpg --dearmor/--enarmor but backed
// entirely by the pgparmor/armor package rather than gpg itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pgparmor/armor/pkg/armor"
)

var (
	flagVerbose = flag.Bool("verbose", false, "log non-fatal diagnostics encountered while decoding")
	flagType    = flag.String("type", "MESSAGE", "envelope type to use when enarmoring: MESSAGE, PUBLIC KEY BLOCK, PRIVATE KEY BLOCK or SIGNATURE")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: pgparmor {dearmor|enarmor} [flags]\n\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pgparmor: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	verb := flag.Arg(0)
	// Flags may also follow the verb, as the usage line shows.
	flag.CommandLine.Parse(flag.Args()[1:])
	if flag.NArg() != 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch verb {
	case "dearmor":
		err = dearmor(os.Stdin, os.Stdout)
	case "enarmor":
		err = enarmor(os.Stdin, os.Stdout, *flagType)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func dearmor(r io.Reader, w io.Writer) error {
	msg, diags, err := armor.Decode(r)
	if err != nil {
		return err
	}
	if *flagVerbose {
		for _, d := range diags {
			log.Print(d.String())
		}
	}
	_, err = w.Write(msg.Payload)
	return err
}

func enarmor(r io.Reader, w io.Writer, envelopeName string) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	envelope, err := envelopeFromName(envelopeName)
	if err != nil {
		return err
	}
	return armor.EncodeMessage(w, envelope, nil, payload)
}

func envelopeFromName(name string) (armor.MessageType, error) {
	switch name {
	case "MESSAGE":
		return armor.Message, nil
	case "PUBLIC KEY BLOCK":
		return armor.PublicKeyBlock, nil
	case "PRIVATE KEY BLOCK":
		return armor.PrivateKeyBlock, nil
	case "SIGNATURE":
		return armor.Signature, nil
	default:
		return armor.MessageType{}, fmt.Errorf("unknown -type %q", name)
	}
}
