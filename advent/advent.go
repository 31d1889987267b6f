package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/vaughan0/go-ini"
)

func main() {
	log.SetFlags(0)
	var (
		configPath = flag.String("config", defaultConfigPath(), "config file (ini)")
		profPath   = flag.String("fgprof", "", "write a wall-clock profile (pprof format) to this file")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Args()[1:], *configPath, *profPath); err != nil {
		log.Fatal(err)
	}
}

func run(name string, args []string, configPath, profPath string) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if profPath != "" {
		f, err := os.Create(profPath)
		if err != nil {
			return err
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("error writing profile:", err)
			}
			f.Close()
		}()
	}

	e := &env{
		day:   dayOf(name),
		args:  args,
		cfg:   cfg,
		stdin: os.Stdin,
	}
	defer e.close()
	ans, err := fn(e)
	if err != nil {
		return fmt.Errorf("%s: %s", name, err)
	}
	if ans != nil {
		fmt.Println(formatAnswer(ans, cfg.humanize))
	}
	return nil
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
}

// A solution computes one answer. A nil answer prints nothing.
type solution func(e *env) (any, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

func dayOf(name string) int {
	n, _ := splitName(name)
	return n
}

type config struct {
	inputDir string
	workers  int
	humanize bool
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "advent.ini")
}

// loadConfig reads the ini file at path. A missing file gives the defaults.
func loadConfig(path string) (config, error) {
	cfg := config{workers: runtime.NumCPU()}
	if path == "" {
		return cfg, nil
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if dir, ok := file.Get("input", "dir"); ok {
		cfg.inputDir = dir
	}
	if s, ok := file.Get("run", "workers"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("config %s: bad [run] workers value %q", path, s)
		}
		cfg.workers = n
	}
	if s, ok := file.Get("run", "humanize"); ok {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("config %s: bad [run] humanize value %q", path, s)
		}
		cfg.humanize = b
	}
	return cfg, nil
}

// An env is what a solution gets to work with.
type env struct {
	day   int
	args  []string
	cfg   config
	in    io.Reader // if set, used instead of stdin
	stdin *os.File

	opened *os.File
}

// input returns the puzzle input: stdin if something is piped in,
// otherwise dayN.txt in the configured input directory.
func (e *env) input() (io.Reader, error) {
	if e.in != nil {
		return e.in, nil
	}
	if e.stdin != nil && !readline.IsTerminal(int(e.stdin.Fd())) {
		return e.stdin, nil
	}
	if e.cfg.inputDir == "" {
		return nil, errors.New("no input: pipe it on stdin or set [input] dir in the config file")
	}
	f, err := os.Open(filepath.Join(e.cfg.inputDir, fmt.Sprintf("day%d.txt", e.day)))
	if err != nil {
		return nil, err
	}
	e.opened = f
	return f, nil
}

func (e *env) close() {
	if e.opened != nil {
		e.opened.Close()
	}
}

func formatAnswer(ans any, human bool) string {
	if !human {
		return fmt.Sprint(ans)
	}
	switch v := ans.(type) {
	case int:
		return humanize.Comma(int64(v))
	case int64:
		return humanize.Comma(v)
	case uint64:
		if v <= math.MaxInt64 {
			return humanize.Comma(int64(v))
		}
	}
	return fmt.Sprint(ans)
}
