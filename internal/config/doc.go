// Package config provides configuration management for statusmsg.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//  2. User Configuration (~/.config/statusmsg/config.yaml)
//  3. Project Configuration (./.statusmsg/config.yaml)
//
// # Configuration Structure
//
//	symbols: auto        # auto | unicode | ascii
//	width: 0             # 0 keeps the natural width
//	plain: false         # true disables colors
//	colors:              # icon color overrides per variant
//	  success: "#10B981"
//	  warning: "214"
//
// Color values are passed to the renderer as-is: a name such as "green",
// an ANSI index or a hex value. Colors merge per variant across layers.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	colors, _ := cfg.ColorOverrides()
//	th := theme.Default().WithColors(colors)
package config
