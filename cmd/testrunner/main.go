// Command testrunner runs precompiled package test binaries (built with
// `go test -c`), unit pass first and then an optional live Recurly pass.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	config "github.com/tbeaudouin05/recurly-trellai/api/config"
)

type options struct {
	testsDir        string
	workDir         string
	pkgParallel     int
	count           int
	integrationRun  string
	integrationPath string
	verbose         bool
}

func main() {
	var o options
	flag.StringVar(&o.testsDir, "tests-dir", "/app/tests", "directory containing compiled test binaries")
	flag.StringVar(&o.workDir, "work-dir", "/app", "fallback working directory for binaries without a package dir")
	flag.IntVar(&o.pkgParallel, "pkg-parallel", runtime.NumCPU(), "number of packages to run in parallel")
	flag.IntVar(&o.count, "count", 1, "pass -test.count to disable caching when set to 1")
	flag.StringVar(&o.integrationRun, "integration-run", "", "regex of live Recurly test(s) to run with -test.run")
	flag.StringVar(&o.integrationPath, "integration-path", "", "relative package path like 'api/services/recurly/app' for the live run")
	flag.BoolVar(&o.verbose, "v", true, "add -test.v to test binaries")
	flag.Parse()

	if err := run(o); err != nil {
		fatal(err)
	}
	fmt.Println("==> All tests passed")
}

func run(o options) error {
	bins, err := collectTestBinaries(o.testsDir)
	if err != nil {
		return err
	}
	if len(bins) == 0 {
		return errors.New("no test binaries found")
	}

	var integrationBin string
	if o.integrationRun != "" {
		if o.integrationPath == "" {
			return errors.New("integration-path is required when integration-run is set")
		}
		// Live tests create and mutate Recurly records.
		if !config.CanTest() {
			return errors.New("refusing live Recurly run: config failed to load or APP_ENV is production")
		}
		integrationBin = filepath.Join(o.testsDir, filepath.FromSlash(o.integrationPath)+".test")
		if _, err := os.Stat(integrationBin); err != nil {
			return fmt.Errorf("integration binary not found at %s: %w", integrationBin, err)
		}
	}

	// The unit pass always runs in -short mode, which skips every live test.
	fmt.Println("==> Running unit tests")
	if err := runBinaries(bins, testArgs(o.verbose, true, o.count, 0), o.pkgParallel, o.workDir); err != nil {
		return err
	}

	if integrationBin != "" {
		fmt.Printf("==> Running live Recurly tests in %s with -test.run=%s\n", o.integrationPath, o.integrationRun)
		args := testArgs(o.verbose, false, o.count, 1)
		args = append(args, "-test.run", o.integrationRun)
		if err := runBinaries([]string{integrationBin}, args, 1, o.workDir); err != nil {
			return err
		}
	}
	return nil
}

func collectTestBinaries(root string) ([]string, error) {
	var bins []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".test") {
			bins = append(bins, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(bins)
	return bins, nil
}

func testArgs(verbose, short bool, count, testParallel int) []string {
	var args []string
	if verbose {
		args = append(args, "-test.v")
	}
	if short {
		args = append(args, "-test.short")
	}
	if count > 0 {
		args = append(args, fmt.Sprintf("-test.count=%d", count))
	}
	if testParallel > 0 {
		args = append(args, fmt.Sprintf("-test.parallel=%d", testParallel))
	}
	return args
}

// runBinaries runs every binary with at most parallel in flight. All binaries
// run even after a failure; the first error is returned.
func runBinaries(bins, args []string, parallel int, workDir string) error {
	if parallel < 1 {
		parallel = 1
	}
	var g errgroup.Group
	g.SetLimit(parallel)
	for _, b := range bins {
		b := b
		g.Go(func() error {
			cmd := exec.Command(b, args...)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			cmd.Env = os.Environ()
			cmd.Dir = binaryDir(b, workDir)
			fmt.Printf("[RUN] %s %s\n", b, strings.Join(args, " "))
			if err := cmd.Run(); err != nil {
				return fmt.Errorf("%s failed: %w", b, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// binaryDir picks the package-like directory next to the binary when it
// exists, so tests that read fixtures relative to their package still work.
func binaryDir(bin, fallback string) string {
	wd := strings.TrimSuffix(bin, ".test")
	if fi, err := os.Stat(wd); err == nil && fi.IsDir() {
		return wd
	}
	return fallback
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
