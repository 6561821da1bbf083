package config

import "os"

// returns ingest flags with default values
func DefaultIngestFlags() IngestFlags {
	return IngestFlags{
		Path:  "",
		Clear: false,
	}
}

// parses ingester command-line flags from os.Args
func ParseIngestFlags() IngestFlags {
	flags := DefaultIngestFlags()

	args := os.Args[2:]

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--path":
			if i+1 < len(args) {
				flags.Path = args[i+1]
				i++
			}
		case "--clear":
			flags.Clear = true
		}
	}

	return flags
}
