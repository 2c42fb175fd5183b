package tlv

import (
	"fmt"
	"strings"
)

// Describe generates an indented report of the decoded tag flags.
func Describe(flags []TagFlags) string {
	var sb strings.Builder
	sb.WriteString("=== BER-TLV TAG FLAGS ===")
	writeTagFlags(&sb, flags, "    ")
	return sb.String()
}

func writeTagFlags(sb *strings.Builder, flags []TagFlags, indent string) {
	for _, f := range flags {
		form := "Primitive"
		if f.Constructed {
			form = "Constructed"
		}

		line := fmt.Sprintf("%s- %s: %s, %s", indent, f.Tag, f.Class, form)
		if f.MultiByte {
			line += ", Multi-Byte"
		}

		sb.WriteString("\n")
		sb.WriteString(line)

		writeTagFlags(sb, f.Children, indent+"    ")
	}
}
