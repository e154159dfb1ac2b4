// Package rustinfo probes the installed Rust toolchain for its release
// channel and version.
//
// Conditions gate tasks on the toolchain, so the probe is deliberately
// forgiving: when rustc is missing or its output is unrecognized, [Probe]
// returns a zero [RustInfo] and the condition engine applies its documented
// unknown-toolchain policy instead of failing the run.
package rustinfo

import (
	"os/exec"
	"strings"
)

// Channel is a Rust release channel. The zero value, [ChannelUnknown],
// means the toolchain did not report a channel (or no toolchain was found).
type Channel int

const (
	ChannelUnknown Channel = iota
	ChannelStable
	ChannelBeta
	ChannelNightly
)

// IsKnown reports whether the channel was actually reported by the toolchain.
func (c Channel) IsKnown() bool {
	return c != ChannelUnknown
}

// Name returns the canonical lowercase channel name ("stable", "beta",
// "nightly"), or an empty string for [ChannelUnknown]. Condition acceptance
// sets are matched against these names.
func (c Channel) Name() string {
	switch c {
	case ChannelStable:
		return "stable"
	case ChannelBeta:
		return "beta"
	case ChannelNightly:
		return "nightly"
	default:
		return ""
	}
}

// String implements fmt.Stringer for log output.
func (c Channel) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return "unknown"
}

// RustInfo is a snapshot of the installed toolchain.
//
// Zero values mean "not reported": [ChannelUnknown] for Channel and an empty
// string for Version. The snapshot is taken once per run and passed through
// the flow context so every condition evaluation observes the same facts.
type RustInfo struct {
	Channel Channel
	Version string
}

// Parse extracts a [RustInfo] from `rustc --version` output, which looks like
//
//	rustc 1.72.0 (5680fa18f 2023-08-23)
//	rustc 1.74.0-beta.2 (9f5fc1bd4 2023-10-17)
//	rustc 1.76.0-nightly (a57a10a1e 2023-11-29)
//
// Unrecognized input yields a zero RustInfo.
func Parse(output string) RustInfo {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 2 || fields[0] != "rustc" {
		return RustInfo{}
	}

	release := fields[1]
	info := RustInfo{Channel: ChannelStable}

	if idx := strings.IndexByte(release, '-'); idx >= 0 {
		suffix := release[idx+1:]
		switch {
		case strings.HasPrefix(suffix, "nightly"):
			info.Channel = ChannelNightly
		case strings.HasPrefix(suffix, "beta"):
			info.Channel = ChannelBeta
		case strings.HasPrefix(suffix, "dev"):
			info.Channel = ChannelNightly
		default:
			info.Channel = ChannelUnknown
		}
		release = release[:idx]
	}

	info.Version = release
	return info
}

// Probe runs `rustc --version` and parses the result.
//
// A missing rustc binary or a failed invocation yields a zero [RustInfo]
// rather than an error; the caller cannot do anything about a broken
// toolchain beyond applying the unknown-toolchain condition policy.
func Probe() RustInfo {
	out, err := exec.Command("rustc", "--version").Output()
	if err != nil {
		return RustInfo{}
	}
	return Parse(string(out))
}
