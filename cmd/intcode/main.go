// Command intcode loads an intcode program and runs it in one of several
// hosts: plain word I/O, a noun/verb memory probe, amplifier chains, the hull
// painting robot, or the arcade cabinet.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/jcorbin/gointcode"
	"github.com/jcorbin/gointcode/amp"
	"github.com/jcorbin/gointcode/arcade"
	"github.com/jcorbin/gointcode/internal/flushio"
	"github.com/jcorbin/gointcode/internal/logio"
	"github.com/jcorbin/gointcode/internal/panicerr"
	"github.com/jcorbin/gointcode/internal/wordinput"
	"github.com/jcorbin/gointcode/robot"
	"github.com/pkg/errors"
)

type command struct {
	log *logio.Logger
	out flushio.WriteFlusher
	in  []io.Reader

	mode     string
	timeout  time.Duration
	trace    bool
	memLimit uint

	noun, verb intcode.Word
	target     intcode.Word
	phases     string
	ascii      bool
	dump       bool
	disasm     bool
	tee        string
	startWhite bool
	freePlay   bool
	render     time.Duration

	prog intcode.Program
	opts []intcode.Option

	// abandoned is set when the run outlives its context; it may still be
	// writing into out.
	abandoned bool
}

func main() {
	log := logio.NewLogger(os.Stderr)
	cmd := command{
		log: log,
		out: flushio.NewWriteFlusher(os.Stdout),
	}

	flag.StringVar(&cmd.mode, "mode", "io", "host mode: io, nounverb, amp, feedback, paint, or arcade")
	flag.DurationVar(&cmd.timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&cmd.trace, "trace", false, "enable trace logging")
	flag.UintVar(&cmd.memLimit, "mem-limit", 0, "enable memory limit")
	flag.Int64Var(&cmd.noun, "noun", 12, "nounverb mode: value for address 1")
	flag.Int64Var(&cmd.verb, "verb", 2, "nounverb mode: value for address 2")
	flag.Int64Var(&cmd.target, "target", 0, "nounverb mode: search for the noun and verb that produce this value")
	flag.StringVar(&cmd.phases, "phases", "", "amp modes: phase settings to search (default 0-4, or 5-9 for feedback)")
	flag.BoolVar(&cmd.ascii, "ascii", false, "io mode: print ASCII output as text")
	flag.BoolVar(&cmd.dump, "dump", false, "io mode: dump the runtime after it stops")
	flag.BoolVar(&cmd.disasm, "disasm", false, "print a disassembly of the program and exit")
	flag.StringVar(&cmd.tee, "tee", "", "io mode: also write output into this file")
	flag.BoolVar(&cmd.startWhite, "start-white", false, "paint mode: start on a white panel")
	flag.BoolVar(&cmd.freePlay, "free-play", false, "arcade mode: play for free")
	flag.DurationVar(&cmd.render, "render", 0, "arcade mode: print every frame, waiting this long after each")
	flag.Parse()

	ctx := context.Background()
	if cmd.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.timeout)
		defer cancel()
	}

	log.ErrorIf(cmd.main(ctx, flag.Args()))
	log.ErrorIf(cmd.flush())
	os.Exit(log.ExitCode())
}

func (cmd *command) main(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("missing program file argument")
	}
	if err := cmd.load(args[0]); err != nil {
		return err
	}

	for _, name := range args[1:] {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		cmd.in = append(cmd.in, f)
	}
	if len(cmd.in) == 0 {
		cmd.in = append(cmd.in, os.Stdin)
	}

	if cmd.trace {
		cmd.opts = append(cmd.opts, intcode.WithLogf(cmd.log.Leveledf("TRACE")))
	}
	if cmd.memLimit != 0 {
		cmd.opts = append(cmd.opts, intcode.WithMemLimit(cmd.memLimit))
	}

	if cmd.disasm {
		return cmd.prog.Disassemble(cmd.out)
	}

	var run func(ctx context.Context) error
	switch cmd.mode {
	case "io":
		run = cmd.runIO
	case "nounverb":
		run = cmd.runNounVerb
	case "amp":
		run = func(ctx context.Context) error { return cmd.runAmp(ctx, false) }
	case "feedback":
		run = func(ctx context.Context) error { return cmd.runAmp(ctx, true) }
	case "paint":
		run = cmd.runPaint
	case "arcade":
		run = cmd.runArcade
	default:
		return errors.Errorf("unknown mode %q", cmd.mode)
	}

	// runtimes only stop at I/O, so a program stuck in a loop is abandoned
	// rather than waited on once ctx is done
	errch := make(chan error, 1)
	go func() {
		errch <- panicerr.Recover(cmd.mode, func() error { return run(ctx) })
	}()
	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
		cmd.abandoned = true
		return ctx.Err()
	}
}

// flush flushes any buffered output, unless an abandoned run still owns it.
func (cmd *command) flush() error {
	if cmd.abandoned {
		return nil
	}
	return cmd.out.Flush()
}

func (cmd *command) load(name string) error {
	text, err := ioutil.ReadFile(name)
	if err != nil {
		return err
	}
	cmd.prog, err = intcode.Parse(string(text))
	if err != nil {
		return errors.WithMessagef(err, "load %v", name)
	}
	cmd.log.Printf("INFO", "loaded %v words from %v", cmd.prog.Len(), name)
	return nil
}

func (cmd *command) runIO(ctx context.Context) (rerr error) {
	out := cmd.out
	if cmd.tee != "" {
		f, err := os.Create(cmd.tee)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		tf := flushio.NewWriteFlusher(f)
		out = flushio.Tee(cmd.out, tf)
	}

	var sink intcode.Output = intcode.NewPrintOutput(out)
	if cmd.ascii {
		sink = intcode.NewASCIIOutput(out)
	}

	src := &wordinput.Input{Queue: cmd.in}
	in := intcode.InputFunc(func() (intcode.Word, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return src.ReadWord()
	})

	rt := cmd.prog.NewRuntime(cmd.opts...)
	err := intcode.Drive(rt, in, sink)
	if cmd.dump {
		lw := logio.Writer{Logf: cmd.log.Leveledf("DUMP")}
		defer lw.Close()
		if derr := rt.Dump(&lw); err == nil {
			err = derr
		}
	}
	return err
}

func (cmd *command) runNounVerb(ctx context.Context) error {
	if cmd.target == 0 {
		val, err := cmd.prog.Run(cmd.noun, cmd.verb, cmd.opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.out, "%v\n", val)
		return err
	}

	base := cmd.prog.NewRuntime(cmd.opts...)
	if err := base.Err(); err != nil {
		return err
	}
	for noun := intcode.Word(0); noun < 100; noun++ {
		for verb := intcode.Word(0); verb < 100; verb++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			val, err := base.Clone().RunNounVerb(noun, verb)
			if err != nil {
				cmd.log.Printf("WARN", "noun=%v verb=%v: %v", noun, verb, err)
				continue
			}
			if val == cmd.target {
				_, err = fmt.Fprintf(cmd.out, "noun=%v verb=%v answer=%v\n", noun, verb, 100*noun+verb)
				return err
			}
		}
	}
	return errors.Errorf("no noun and verb produce %v", cmd.target)
}

func (cmd *command) runAmp(ctx context.Context, feedback bool) error {
	list := cmd.phases
	if list == "" {
		list = "0,1,2,3,4"
		if feedback {
			list = "5,6,7,8,9"
		}
	}
	settings, err := intcode.Parse(list)
	if err != nil {
		return errors.WithMessage(err, "invalid -phases")
	}

	best, phases, err := amp.MaxSignal(ctx, cmd.prog, settings.Words(), feedback, cmd.opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.out, "signal=%v phases=%v\n", best, intcode.NewProgram(phases))
	return err
}

func (cmd *command) runPaint(ctx context.Context) error {
	r := robot.New()
	if cmd.startWhite {
		r.Paint(robot.White)
	}
	if err := r.Run(cmd.prog, cmd.opts...); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.out, "painted %v panels\n%v", r.Painted(), r)
	return err
}

func (cmd *command) runArcade(ctx context.Context) error {
	g := arcade.New()
	g.FreePlay = cmd.freePlay
	g.Pace = func(g *arcade.Game) error {
		if cmd.render != 0 {
			if _, err := io.WriteString(cmd.out, "\n"+g.String()); err != nil {
				return err
			}
			if err := cmd.out.Flush(); err != nil {
				return err
			}
			select {
			case <-time.After(cmd.render):
			case <-ctx.Done():
			}
		}
		return ctx.Err()
	}
	if err := g.Run(cmd.prog, cmd.opts...); err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("blocks=%v score=%v frames=%v", g.Blocks(), g.Score(), g.Frames()),
	}
	if cmd.render != 0 {
		lines = append(lines, g.String())
	}
	_, err := io.WriteString(cmd.out, strings.Join(lines, "\n")+"\n")
	return err
}
