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
	"encoding/gob"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/lassandro/goc8/pkg/assembler"
)

var dumpCmd = &cobra.Command{
	Use:   "dump table.c8db",
	Short: "Pretty-print a .c8db debug symbol table",

	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return err
		}

		defer file.Close()

		var symtable assembler.SymTable

		if err := gob.NewDecoder(file).Decode(&symtable); err != nil {
			log.Println(err)
			return err
		}

		pp.Println(symtable)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
