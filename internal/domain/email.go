package domain

import "regexp"

// emailPattern is the same loose shape check the booking screens apply: something@something.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
