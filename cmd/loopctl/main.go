package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/loopctl/internal/ectp"
	"github.com/danmuck/loopctl/internal/logging"
	"github.com/danmuck/loopctl/internal/observability"
)

func main() {
	build := flag.Bool("build", false, "build a frame from the config file and print it as hex")
	inspect := flag.String("inspect", "", "hex-encoded frame to walk and report")
	configPath := flag.String("config", "cmd/loopctl/config.toml", "build config path")
	flag.Parse()

	logging.ConfigureRuntime()
	observability.RegisterMetrics()

	var err error
	switch {
	case *build:
		err = runBuild(*configPath)
	case *inspect != "":
		err = runInspect(*inspect)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "loopctl: %v\n", err)
		os.Exit(1)
	}
}

func runBuild(path string) error {
	cfg, err := loadBuildConfig(path)
	if err != nil {
		return err
	}
	for _, addr := range cfg.ForwardAddrs {
		if !ectp.ForwardAddrValid(addr) {
			return fmt.Errorf("forward address %s is broadcast/multicast", addr)
		}
	}

	frameSize := ectp.FrameSize(len(cfg.ForwardAddrs), len(cfg.Data))
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = frameSize
	}

	buf := make([]byte, capacity)
	ectp.BuildFrame(cfg.Skipcount, cfg.ForwardAddrs, cfg.Receipt, cfg.Data, buf, cfg.Filler)

	complete := capacity >= frameSize
	observability.RecordFrameBuilt(complete)
	log.Info().
		Int("frame_size", frameSize).
		Int("capacity", capacity).
		Bool("complete", complete).
		Msg("frame built")

	fmt.Println(hex.EncodeToString(buf))
	return nil
}

func runInspect(rawHex string) error {
	frame, err := hex.DecodeString(strings.TrimSpace(rawHex))
	if err != nil {
		return fmt.Errorf("decode frame hex: %w", err)
	}

	hops, reply, err := ectp.WalkChain(frame)
	outcome := walkOutcome(err)
	observability.RecordChainWalk(outcome)
	if err != nil {
		return fmt.Errorf("walk chain: %w", err)
	}

	for i, hop := range hops {
		log.Info().
			Int("hop", i).
			Str("addr", hop.String()).
			Bool("valid", ectp.ForwardAddrValid(hop)).
			Msg("forward message")
	}
	log.Info().
		Uint16("receipt", reply.Receipt).
		Int("data_len", len(reply.Data)).
		Str("data_hex", hex.EncodeToString(reply.Data)).
		Msg("reply message")
	return nil
}

func walkOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ectp.ErrFrameTooShort):
		return "frame_too_short"
	case errors.Is(err, ectp.ErrBadSkipcount):
		return "bad_skipcount"
	case errors.Is(err, ectp.ErrTruncatedMessage):
		return "truncated_message"
	case errors.Is(err, ectp.ErrUnknownMessageType):
		return "unknown_message_type"
	default:
		return "error"
	}
}
