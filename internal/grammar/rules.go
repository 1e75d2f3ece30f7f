package grammar

import "github.com/ghettovoice/abnf"

// RFC 952 hostname rules plus the strict IRCv3 key-name rule.
// Hyphen placement restrictions are encoded structurally: a hyphen run must
// be followed by an alphanumeric, which rules out trailing hyphens and, for
// host labels, doubled hyphens.
var (
	alpha = abnf.Alt("ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit    = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	alphanum = abnf.Alt("alphanum", alpha, digit)

	// name = ALPHA *( alphanum / ( "-" alphanum ) )
	label = abnf.Concat("name",
		alpha,
		abnf.Repeat0Inf(`*( alphanum / ( "-" alphanum ) )`, abnf.Alt(`alphanum / ( "-" alphanum )`,
			alphanum,
			abnf.Concat(`"-" alphanum`, abnf.Literal(`-`, []byte{'-'}), alphanum),
		)),
	)

	// hname = name *( "." name )
	hostName = abnf.Concat("hname",
		label,
		abnf.Repeat0Inf(`*( "." name )`, abnf.Concat(`"." name`, abnf.Literal(`.`, []byte{'.'}), label)),
	)

	// key-name = ALPHA *( alphanum / ( 1*"-" alphanum ) )
	keyName = abnf.Concat("key-name",
		alpha,
		abnf.Repeat0Inf(`*( alphanum / ( 1*"-" alphanum ) )`, abnf.Alt(`alphanum / ( 1*"-" alphanum )`,
			alphanum,
			abnf.Concat(`1*"-" alphanum`, abnf.Repeat1Inf(`1*"-"`, abnf.Literal(`-`, []byte{'-'})), alphanum),
		)),
	)
)
