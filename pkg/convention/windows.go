package convention

import "strings"

func isSlash(c byte) bool {
	return c == '\\' || c == '/'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// winVolumeNameLen returns the length of the leading volume name: "C:",
// "\\host\share", or a bare "\\host" when the share is still missing.
func winVolumeNameLen(p string) int {
	if HasDriveLetter(p) {
		return 2
	}
	if !IsUNC(p) || len(p) == 2 {
		return 0
	}
	if isSlash(p[2]) {
		// "\\\x" has no host
		return 0
	}
	hostEnd := strings.IndexAny(p[2:], `\/`)
	if hostEnd == -1 {
		return len(p)
	}
	hostEnd += 2
	shareEnd := strings.IndexAny(p[hostEnd+1:], `\/`)
	if shareEnd == -1 {
		return len(p)
	}
	if shareEnd == 0 {
		return hostEnd
	}
	return hostEnd + 1 + shareEnd
}

func winIsAbs(p string) bool {
	if p == "" {
		return false
	}
	if isSlash(p[0]) {
		return true
	}
	return len(p) >= 3 && HasDriveLetter(p) && isSlash(p[2])
}

func winClean(p string) string {
	volLen := winVolumeNameLen(p)
	vol := strings.ReplaceAll(p[:volLen], "/", `\`)
	rest := p[volLen:]
	unc := volLen > 2
	rooted := unc || (rest != "" && isSlash(rest[0]))

	var stack []string
	for _, seg := range strings.FieldsFunc(rest, func(r rune) bool { return r == '\\' || r == '/' }) {
		switch seg {
		case ".":
		case "..":
			switch {
			case len(stack) > 0 && stack[len(stack)-1] != "..":
				stack = stack[:len(stack)-1]
			case !rooted:
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, seg)
		}
	}

	out := strings.Join(stack, `\`)
	switch {
	case unc && out == "":
		return vol
	case rooted:
		return vol + `\` + out
	case vol+out == "":
		return "."
	default:
		return vol + out
	}
}

func winJoin(elem ...string) string {
	var parts []string
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	joined := parts[0]
	for _, e := range parts[1:] {
		if isSlash(joined[len(joined)-1]) {
			joined += e
			continue
		}
		joined += `\` + e
	}
	return winClean(joined)
}

func winDir(p string) string {
	volLen := winVolumeNameLen(p)
	vol := strings.ReplaceAll(p[:volLen], "/", `\`)
	i := len(p) - 1
	for i >= volLen && !isSlash(p[i]) {
		i--
	}
	dir := winClean(p[volLen : i+1])
	if dir == "." && volLen > 2 {
		return vol
	}
	return vol + dir
}

func winBase(p string) string {
	if p == "" {
		return "."
	}
	for len(p) > 0 && isSlash(p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	p = p[winVolumeNameLen(p):]
	i := len(p) - 1
	for i >= 0 && !isSlash(p[i]) {
		i--
	}
	if i >= 0 {
		p = p[i+1:]
	}
	if p == "" {
		return `\`
	}
	return p
}
