// Command kestrelctl is a thin stdin/stdout UCI driver: it reads
// whitespace-tokenized commands from stdin and dispatches them to a
// uci.Engine, the same line-at-a-time loop pleco's
// original_source/pleco_engine/src/searcher/mod.rs's PlecoSearcher::uci
// runs, generalized from Rust's direct match on &str to a Go switch and
// from a single-file REPL to a small per-command dispatch table below.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/uci"
)

var log = logging.MustGetLogger("kestrelctl")

func main() {
	cfg := LoadConfig()
	engine := uci.NewEngine()
	engine.SetOption("Hash", fmt.Sprintf("%d", cfg.HashMB))
	if cfg.Threads > 0 {
		engine.SetOption("Threads", fmt.Sprintf("%d", cfg.Threads))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		command := args[0]
		rest := args[1:]

		switch command {
		case "uci":
			fmt.Println("id name kestrelctl")
			fmt.Println("id author kestrelchess")
			fmt.Println("uciok")
		case "isready":
			if engine.IsReady() {
				fmt.Println("readyok")
			}
		case "ucinewgame":
			engine = uci.NewEngine()
		case "setoption":
			name, value := parseSetOption(rest)
			engine.SetOption(name, value)
			if name == "Hash" {
				fmt.Sscanf(value, "%d", &cfg.HashMB)
			}
			if name == "Threads" {
				fmt.Sscanf(value, "%d", &cfg.Threads)
			}
		case "position":
			if err := applyPosition(engine, rest); err != nil {
				log.Warningf("position: %v", err)
			}
		case "go":
			limits := uci.ParseGo(rest)
			white := engine.Position().SideToMove() == piece.White
			best := engine.Go(context.Background(), limits, white)
			fmt.Printf("bestmove %s\n", best)
		case "stop":
			engine.Stop()
		case "quit":
			if err := SaveConfig(cfg); err != nil {
				log.Warningf("saving config: %v", err)
			}
			return
		default:
			fmt.Printf("unknown command: %s\n", command)
		}
	}

	if err := SaveConfig(cfg); err != nil {
		log.Warningf("saving config: %v", err)
	}
}

// applyPosition handles "position [fen <fenstring> | startpos] [moves
// <move>...]".
func applyPosition(engine *uci.Engine, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position: missing fen/startpos argument")
	}

	var spec string
	i := 0
	switch args[0] {
	case "startpos":
		spec = "startpos"
		i = 1
	case "fen":
		fields := args[1:]
		end := len(fields)
		for j, f := range fields {
			if f == "moves" {
				end = j
				break
			}
		}
		spec = strings.Join(fields[:end], " ")
		i = 1 + end
	default:
		return fmt.Errorf("position: expected startpos or fen, got %q", args[0])
	}

	var moves []string
	if i < len(args) && args[i] == "moves" {
		moves = args[i+1:]
	}
	return engine.SetPosition(spec, moves)
}

// parseSetOption extracts name/value from "setoption name <name> value
// <value>"; the value may itself contain spaces, so everything after the
// "value" token is rejoined.
func parseSetOption(args []string) (name, value string) {
	var nameParts, valueParts []string
	mode := ""
	for _, a := range args {
		switch a {
		case "name":
			mode = "name"
			continue
		case "value":
			mode = "value"
			continue
		}
		switch mode {
		case "name":
			nameParts = append(nameParts, a)
		case "value":
			valueParts = append(valueParts, a)
		}
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " ")
}
