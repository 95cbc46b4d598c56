/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nilboard/boson/internal/config"
	applog "github.com/nilboard/boson/internal/logging"
	"github.com/nilboard/boson/internal/perft"
)

var out = message.NewPrinter(language.English)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "runs perft on the given position (or the start position) up to the given depth")
	divide := flag.Bool("divide", false, "reports perft's node count broken down by root move, computed in parallel")
	fenStr := flag.String("fen", startFen, "fen for the perft test")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the perft run to ./prof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("./prof")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := applog.GetLog()

	if *perftDepth > 0 {
		if *divide {
			runDivide(*fenStr, *perftDepth)
			return
		}
		runPerft(log, *fenStr, *perftDepth)
		return
	}

	flag.Usage()
}

func runDivide(fenStr string, depth int) {
	entries, ok := perft.DivideParallel(fenStr, depth)
	if !ok {
		out.Printf("invalid fen: %s\n", fenStr)
		return
	}
	var total uint64
	for _, e := range entries {
		out.Printf("%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	out.Printf("Total: %d\n", total)
}

func runPerft(log *logging.Logger, fenStr string, maxDepth int) {
	for depth := 1; depth <= maxDepth; depth++ {
		var p perft.Perft
		if !p.StartPerft(fenStr, depth) {
			out.Printf("invalid fen: %s\n", fenStr)
			return
		}
		log.Infof("depth %d: nodes=%d captures=%d ep=%d checks=%d mates=%d castles=%d promotions=%d (%s)",
			depth, p.Nodes, p.CaptureCounter, p.EnpassantCounter, p.CheckCounter,
			p.CheckMateCounter, p.CastleCounter, p.PromotionCounter, p.LastRunTime)
		out.Printf("Depth %d: %d nodes in %s\n", depth, p.Nodes, p.LastRunTime)
	}
}

func printVersionInfo() {
	out.Println("boson - a bitboard chess move generator")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
