package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd(conf *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse input lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(conf)
			if err != nil {
				return err
			}
			d, err := s.newDriver(conf)
			if err != nil {
				return err
			}
			repl, err := readline.New(s.G.Name + "> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			pterm.Info.Println("Welcome to pgparse")
			tracer().Infof("Quit with <ctrl>D")
			for {
				line, err := repl.Readline()
				if err != nil { // io.EOF
					break
				}
				if line = strings.TrimSpace(line); line == "" {
					continue
				}
				tree, err := d.ParseString(line)
				if err != nil {
					pterm.Error.Println(err.Error())
					continue
				}
				printTree(s.G, tree, conf)
			}
			println("Good bye!")
			return nil
		},
	}
	addParseFlags(cmd, conf)
	return cmd
}
