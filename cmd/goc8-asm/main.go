// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lassandro/goc8/pkg/assembler"
	"github.com/lassandro/goc8/pkg/encoding"
)

var debugvar bool
var outvar string
var orgvar string

var errAssemblyFailed = errors.New("assembly failed")

var rootCmd = &cobra.Command{
	Use:   "goc8-asm [flags] [file.asm]",
	Short: "CHIP-8 assembler",
	Long: `goc8-asm translates CHIP-8 assembly source into a flat binary
image loadable at the configured origin (conventionally $200). Source
is read from the given file, or from stdin when no file is given.`,

	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return goc8asm(args)
	},
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&outvar, "out", "o", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	rootCmd.PersistentFlags().StringVar(
		&orgvar, "org", "$200",
		"Origin address the binary is assembled against "+
			"($-prefixed hex or decimal, $000..$FFF)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'.c8db'",
	)
}

func parseOrigin(s string) (uint16, error) {
	var value uint32
	var err error

	if strings.HasPrefix(s, "$") {
		value, err = encoding.DecodeHex(s)
	} else {
		value, err = encoding.DecodeInt(s)
	}

	if err != nil {
		return 0, fmt.Errorf("invalid origin %q", s)
	}

	if value > uint32(assembler.AddressLimit) {
		return 0, fmt.Errorf("origin %q outside $000..$FFF", s)
	}

	return uint16(value), nil
}

// printDiagnostics renders each error, underlining the offending token
// when the input supports seeking back to it.
func printDiagnostics(input io.ReadSeeker, errs []error) {
	for _, err := range errs {
		tokenErr, ok := err.(assembler.TokenError)

		if !ok || input == os.Stdin {
			log.Println(err)
			continue
		}

		cursor := tokenErr.GetPosition()

		if _, err := input.Seek(cursor.LineByte, io.SeekStart); err != nil {
			log.Println(err)
			continue
		}

		line, _ := bufio.NewReader(input).ReadString('\n')
		line = strings.TrimSuffix(line, "\n")

		size := int(cursor.Size)

		if size < 1 {
			size = 1
		}

		underlinefmt := fmt.Sprintf(
			"%% %ds%s",
			int(cursor.Byte-cursor.LineByte)+1,
			strings.Repeat("~", size-1),
		)

		log.Printf(
			"%s\n%s\n\033[31m%s\033[0m",
			err,
			line,
			fmt.Sprintf(underlinefmt, "^"),
		)
	}
}

func goc8asm(args []string) error {
	origin, err := parseOrigin(orgvar)

	if err != nil {
		log.Println(err)
		return errAssemblyFailed
	}

	var infile string
	var input io.ReadSeeker

	if len(args) == 0 {
		input = os.Stdin
		log.SetPrefix("\033[1m<stdin>:\033[0m")

		if outvar == "" {
			outvar = "out.ch8"
		}
	} else {
		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return errAssemblyFailed
		}

		defer file.Close()

		filename := filepath.Base(file.Name())

		if stat, err := file.Stat(); err != nil {
			log.Println(err)
			return errAssemblyFailed
		} else if stat.IsDir() {
			log.Printf("%s is not a valid CHIP-8 assembly file", filename)
			return errAssemblyFailed
		}

		input = file
		infile = file.Name()
		log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m", filename))

		if outvar == "" {
			outvar = strings.ReplaceAll(
				filename, filepath.Ext(filename), ".ch8",
			)
		}
	}

	var symtable assembler.SymTable
	var symtarget *assembler.SymTable = nil

	if debugvar {
		if input != os.Stdin {
			var err error
			if symtable.Source, err = filepath.Abs(infile); err != nil {
				log.Println(err)
				symtable.Source = ""
			}
		}
		symtable.Symbols = make(map[uint16]int64)
		symtable.Labels = make(map[uint16]string)
		symtarget = &symtable
	}

	image, errs := assembler.AssembleChip8Source(input, origin, symtarget)

	if len(errs) > 0 {
		printDiagnostics(input, errs)
		return errAssemblyFailed
	}

	if err := os.WriteFile(outvar, image, 0666); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return errAssemblyFailed
	}

	if debugvar {
		filename := filepath.Dir(outvar) + "/" + strings.ReplaceAll(
			filepath.Base(outvar), filepath.Ext(outvar), ".c8db",
		)

		file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, 0666)

		if err != nil {
			log.Println("Error creating symbol table")
			log.Println(err)
			return errAssemblyFailed
		}

		if err := gob.NewEncoder(file).Encode(symtable); err != nil {
			file.Close()
			log.Println("Error writing symbol table")
			log.Println(err)
			return errAssemblyFailed
		}

		file.Close()
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
