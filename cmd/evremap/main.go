// Command evremap grabs a physical keyboard and replays a remapped
// event stream through a synthetic uinput device, driven by a
// declarative YAML mapping file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sudesh955/evremap/internal/device"
	"github.com/sudesh955/evremap/internal/keycodes"
	"github.com/sudesh955/evremap/internal/logging"
	"github.com/sudesh955/evremap/internal/supervisor"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "evremap",
		Short:         "Remap keyboard events through a virtual uinput device",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newListDevicesCmd())
	root.AddCommand(newListKeysCmd())
	root.AddCommand(newDebugEventsCmd())
	root.AddCommand(newRemapCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("evremap %s (%s)\n", version, commit)
			return nil
		},
	}
}

func newListDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-devices",
		Short: "Enumerate readable keyboard-capable input devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := device.Enumerate()
			if err != nil {
				return err
			}
			for _, info := range infos {
				fmt.Printf("%s\tname=%q\tphys=%q\n", info.Path, info.Name, info.Phys)
			}
			return nil
		},
	}
}

func newListKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-keys",
		Short: "Print every valid KeyCode name",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range keycodes.All() {
				fmt.Println(code.String())
			}
			return nil
		},
	}
}

func newDebugEventsCmd() *cobra.Command {
	var path, name, phys string

	cmd := &cobra.Command{
		Use:   "debug-events",
		Short: "Grab a device and print its raw events without remapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := device.Find(path, name, phys)
			if err != nil {
				return fmt.Errorf("resolving device: %w", err)
			}

			src, err := device.Open(info.Path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", info.Path, err)
			}
			defer src.Close()

			fmt.Printf("grabbed %s (name=%q phys=%q); press Ctrl+C to stop\n", src.Path(), src.Name(), src.Phys())

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			done := make(chan struct{})
			go func() {
				<-sigCh
				src.Close()
				close(done)
			}()

			for {
				ev, err := src.Next()
				if err != nil {
					select {
					case <-done:
						return nil
					default:
						return fmt.Errorf("reading event: %w", err)
					}
				}
				if ev.Kind == device.EventEOF {
					return nil
				}
				printEvent(ev)
			}
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "device path, e.g. /dev/input/event3")
	cmd.Flags().StringVar(&name, "device-name", "", "device name as reported by the kernel")
	cmd.Flags().StringVar(&phys, "phys", "", "physical path tiebreaker")
	return cmd
}

func printEvent(ev device.Event) {
	switch ev.Kind {
	case device.EventKey:
		fmt.Printf("key\t%s\t%s\n", ev.Code, ev.Value)
	case device.EventSync:
		fmt.Println("sync\tSYN_DROPPED")
	case device.EventOther:
		fmt.Printf("other\ttype=%d\tcode=%d\tvalue=%d\n", ev.RawType, ev.RawCode, ev.RawValue)
	}
}

func newRemapCmd() *cobra.Command {
	var (
		path          string
		name          string
		phys          string
		delaySeconds  int
		waitForDevice bool
	)

	cmd := &cobra.Command{
		Use:   "remap <config>",
		Short: "Run the remapping engine against a mapping config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New()

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			opts := supervisor.Options{
				Path:          path,
				DeviceName:    name,
				Phys:          phys,
				Delay:         time.Duration(delaySeconds) * time.Second,
				WaitForDevice: waitForDevice,
			}

			return supervisor.Run(ctx, args[0], opts, log)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "device path, e.g. /dev/input/event3")
	cmd.Flags().StringVar(&name, "device-name", "", "device name as reported by the kernel")
	cmd.Flags().StringVar(&phys, "phys", "", "physical path tiebreaker")
	cmd.Flags().IntVar(&delaySeconds, "delay", 2, "seconds to wait before grabbing the device, to let modifier keys settle")
	cmd.Flags().BoolVar(&waitForDevice, "wait-for-device", false, "poll for the device if not present, and reacquire it if it disconnects")
	return cmd
}
