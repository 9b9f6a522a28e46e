// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"os"

	log "github.com/0xsoniclabs/whisper/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "Whisper Replay",
		HelpName:  "whisper-replay",
		Usage:     "replay a recorded hint/branch trace through the Whisper predictor",
		Copyright: "(c) 2025 Sonic Labs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "trace-file",
				Aliases:  []string{"f"},
				Usage:    "path to a gzip-compressed hint/branch trace",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "hint-buffer-size",
				Usage: "capacity of Whisper's LRU hint buffer",
				Value: 32,
			},
			&cli.StringFlag{
				Name:  "fallback",
				Usage: "fallback predictor to delegate to when Whisper declines: static",
				Value: "static",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "report format: table or none",
				Value: "table",
			},
			&log.LogLevelFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf(log.NewLogger("ERROR", "whisper-replay"), "%v", err)
	}
}
