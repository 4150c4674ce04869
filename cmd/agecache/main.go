// Demo driver for the agecache module: a cache walkthrough, a version
// sort, and a few segment overlap checks.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/emilybidder/agecache"
	"github.com/emilybidder/agecache/segment"
	"github.com/emilybidder/agecache/version"
)

var rootCmd = &cobra.Command{
	Use:   "agecache",
	Short: "Demos for the agecache module",
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Walk through the time-expiring LRU cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		lifetime, _ := cmd.Flags().GetDuration("lifetime")
		return runCacheDemo(lifetime)
	},
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Sort sample version strings",
	Run: func(cmd *cobra.Command, args []string) {
		runVersionsDemo()
	},
}

var overlapCmd = &cobra.Command{
	Use:   "overlap",
	Short: "Check sample segments for overlap",
	Run: func(cmd *cobra.Command, args []string) {
		runOverlapDemo()
	},
}

// demoMetrics counts cache events for the end-of-run summary.
type demoMetrics struct {
	hits    int
	misses  int
	expired int
}

func (m *demoMetrics) Hit()    { m.hits++ }
func (m *demoMetrics) Miss()   { m.misses++ }
func (m *demoMetrics) Expire() { m.expired++ }

func runCacheDemo(lifetime time.Duration) error {
	metrics := &demoMetrics{}

	c, err := agecache.New(lifetime,
		agecache.WithMetrics[int, string](metrics))
	if err != nil {
		return err
	}

	fmt.Println("LIFETIME :", lifetime)

	c.Put(1, "a")
	c.Put(2, "b")

	printGet(c, 2)
	printGet(c, 1)
	printGet(c, 99999) // never stored

	c.Put(3, "c")
	c.Put(4, "d")

	printGet(c, 3)
	printGet(c, 4)
	printGet(c, 1)
	printGet(c, 2)

	fmt.Println("ORDER    :", c.Keys())
	fmt.Printf("METRICS  : hits=%d misses=%d expired=%d\n",
		metrics.hits, metrics.misses, metrics.expired)
	return nil
}

func printGet(c *agecache.LRUCache[int, string], key int) {
	if v, ok := c.Get(key); ok {
		fmt.Printf("GET %-5d → %q\n", key, v)
	} else {
		fmt.Printf("GET %-5d → (absent)\n", key)
	}
}

func runVersionsDemo() {
	versions := []string{
		"0.0", "1.1", "1.10", "10", "2.0", "1.10a",
		"1.a10", "1.b97", "1.10b", "1.2", "1.1.0", "1.1.1",
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return version.Compare(versions[i], versions[j]) < 0
	})

	for _, v := range versions {
		fmt.Println(v)
	}
}

func runOverlapDemo() {
	cases := [][4]float64{
		{1, 5, 2, 6},
		{1, 5, 6, 8},
		{2, 6, 1, 5},
		{6, 8, 1, 5},
		{5, 1, 2, 6}, // endpoints given "backwards"
	}

	for _, c := range cases {
		fmt.Printf("(%g, %g) vs (%g, %g) → %v\n",
			c[0], c[1], c[2], c[3], segment.Overlap(c[0], c[1], c[2], c[3]))
	}
}

func init() {
	cacheCmd.Flags().Duration("lifetime", 5*time.Second, "entry lifetime since last access")
	rootCmd.AddCommand(cacheCmd, versionsCmd, overlapCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
