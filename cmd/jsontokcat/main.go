// Copyright 2025 easymvp
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// jsontokcat reads a JSON document from stdin and prints one line per
// token to stdout. It exists to exercise the tokenizer end to end from a
// real process boundary, the way gojsonlex's stdinparser example does.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/streamtok/jsontok"
)

func main() {
	correctCursor := flag.Bool("correct-cursor", false, "park the stream cursor after the last token instead of exposing Remainder")
	stringsAsFiles := flag.Bool("strings-as-files", false, "emit string tokens as lazy reader handles instead of materialized text")
	debug := flag.Bool("debug", false, "log each token as it is scanned")
	flag.Parse()

	opts := []jsontok.Option{
		jsontok.WithStringsAsFiles(*stringsAsFiles),
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "correct-cursor" {
			opts = append(opts, jsontok.WithCorrectCursor(*correctCursor))
		}
	})

	tok, err := jsontok.New(jsontok.NewReaderStream(os.Stdin), opts...)
	if err != nil {
		log.Fatalf("fatal: could not create tokenizer: %v", err)
	}

	for {
		t, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("fatal: could not tokenize input: %v", err)
		}

		if *debug {
			log.Printf("token: kind=%s start=%+v end=%+v", t.Kind, t.Start, t.End)
		}
		printToken(t)
	}

	if *correctCursor {
		if err := tok.ParkCursor(); err != nil {
			log.Fatalf("fatal: could not park cursor: %v", err)
		}
	} else if rest := tok.Remainder(); len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "# %d unconsumed bytes buffered past the last token\n", len(rest))
	}
}

func printToken(t jsontok.Token) {
	switch t.Kind {
	case jsontok.KindOperator:
		fmt.Printf("Operator %c\n", t.Operator())
	case jsontok.KindString:
		if t.IsLazyString() {
			text, err := t.Reader().ReadAll()
			if err != nil {
				log.Fatalf("fatal: could not read lazy string: %v", err)
			}
			fmt.Printf("String %q\n", text)
		} else {
			fmt.Printf("String %q\n", t.Text())
		}
	case jsontok.KindNumber:
		fmt.Printf("Number %s\n", t.NumberValue())
	case jsontok.KindBoolean:
		fmt.Printf("Boolean %t\n", t.Bool())
	case jsontok.KindNull:
		fmt.Println("Null")
	}
}
