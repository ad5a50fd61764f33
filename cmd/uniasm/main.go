// Completion: 100% - Demo driver complete
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/xyproto/uniasm"
)

// uniasm emits one of the bundled demonstration streams for the chosen
// target and prints the instruction units as a hex dump. It exists to
// eyeball the expansions of the neutral mnemonics per architecture.

// fileConfig mirrors the emitter configuration in uniasm.toml form.
type fileConfig struct {
	Arch         string `toml:"arch"`
	BaseWidth    uint32 `toml:"base_width"`
	LittleEndian bool   `toml:"little_endian"`
	CompatPW8    bool   `toml:"compat_pw8"`
	OutputPath   string `toml:"output_path"`
}

func loadFileConfig(path string) (fileConfig, error) {
	fc := fileConfig{Arch: "a64"}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, err
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

func main() {
	var archFlag = flag.String("arch", "", "target architecture (a64, p64)")
	var configFlag = flag.String("config", "uniasm.toml", "configuration file")
	var demoFlag = flag.String("demo", "sum", "demo stream (sum, memfill, swap)")
	var outputFlag = flag.String("o", "", "write the raw stream to a file instead of dumping hex")
	var debugFlag = flag.Bool("debug", false, "dump the emitter state after finalize")
	var verbose = flag.Bool("v", false, "verbose mode (trace every emitted unit)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if *verbose {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "uniasm: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	fc, err := loadFileConfig(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *archFlag != "" {
		fc.Arch = *archFlag
	}
	if *verbose {
		uniasm.VerboseMode = true
	}

	arch, err := uniasm.ParseArch(fc.Arch)
	if err != nil {
		log.Fatal(err)
	}
	cfg := uniasm.DefaultConfig()
	if fc.BaseWidth != 0 {
		cfg.BaseWidth = fc.BaseWidth
	}
	cfg.LittleEndian = fc.LittleEndian
	cfg.CompatPW8 = fc.CompatPW8

	out, err := uniasm.NewOut(arch, cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch *demoFlag {
	case "sum":
		demoSum(out)
	case "memfill":
		demoMemfill(out)
	case "swap":
		demoSwap(out)
	default:
		log.Fatalf("unknown demo %q (have: sum, memfill, swap)", *demoFlag)
	}

	code, err := out.Bytes()
	if err != nil {
		log.Fatalf("finalize: %v", err)
	}
	log.Infow("emitted", "arch", arch.String(), "demo", *demoFlag, "bytes", len(code))

	if *debugFlag {
		spew.Fdump(os.Stderr, out.Config())
	}
	outPath := fc.OutputPath
	if *outputFlag != "" {
		outPath = *outputFlag
	}
	if outPath != "" {
		if err := os.WriteFile(outPath, code, 0o644); err != nil {
			log.Fatal(err)
		}
		return
	}
	hexdump(code)
}

// demoSum sums the 32-bit elements of an array: Reax = base, Recx =
// count, result in Redx.
func demoSum(o *uniasm.Out) {
	loop := o.NewLabel()
	done := o.NewLabel()
	o.MovwxRI(uniasm.Redx, uniasm.IC(0))
	o.Label(loop)
	o.CmjwxRZ(uniasm.Recx, uniasm.EZx, done)
	o.AddwxLD(uniasm.Redx, uniasm.M(uniasm.Reax), uniasm.DP(0))
	o.AddxxRI(uniasm.Reax, uniasm.IC(4))
	o.SubwxRI(uniasm.Recx, uniasm.IC(1))
	o.Jmpxx(loop)
	o.Label(done)
}

// demoMemfill stores a byte pattern: Reax = base, Recx = count.
func demoMemfill(o *uniasm.Out) {
	loop := o.NewLabel()
	done := o.NewLabel()
	o.Label(loop)
	o.CmjwxRZ(uniasm.Recx, uniasm.EZx, done)
	o.MovbxMI(uniasm.M(uniasm.Reax), uniasm.DE(0), uniasm.IB(0xA5))
	o.AddxxRI(uniasm.Reax, uniasm.IC(1))
	o.SubwxRI(uniasm.Recx, uniasm.IC(1))
	o.Jmpxx(loop)
	o.Label(done)
}

// demoSwap exchanges two memory words through the stack.
func demoSwap(o *uniasm.Out) {
	o.MovxxLD(uniasm.Rebx, uniasm.M(uniasm.Reax), uniasm.DP(0))
	o.StackSt(uniasm.Rebx)
	o.MovxxLD(uniasm.Rebx, uniasm.M(uniasm.Recx), uniasm.DP(0))
	o.MovxxST(uniasm.Rebx, uniasm.M(uniasm.Reax), uniasm.DP(0))
	o.StackLd(uniasm.Rebx)
	o.MovxxST(uniasm.Rebx, uniasm.M(uniasm.Recx), uniasm.DP(0))
}

func hexdump(code []byte) {
	for i := 0; i < len(code); i += 16 {
		end := i + 16
		if end > len(code) {
			end = len(code)
		}
		fmt.Printf("%08x ", i)
		for j := i; j < end; j++ {
			if j%4 == 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%02x", code[j])
		}
		fmt.Println()
	}
}
