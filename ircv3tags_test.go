package ircv3tags_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/ircv3tags"
)

var _ = Describe("Parser", Label("parser"), func() {
	Describe("DebugParse()", func() {
		It("should parse the tags prefix of an IRC line", func() {
			tags, rest, err := ircv3tags.DebugParse(
				"@id=234AB;+example.com/key=value :nick!user@host PRIVMSG #channel :Hello",
			)
			Expect(err).ToNot(HaveOccurred())
			Expect(rest).To(Equal(":nick!user@host PRIVMSG #channel :Hello"))
			Expect(tags.Len()).To(Equal(2))
			v, ok := tags.Get("id")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("234AB"))
			v, ok = tags.Get("+example.com/key")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("value"))
		})

		It("should keep the tags in appearance order", func() {
			tags, _, err := ircv3tags.DebugParse("@c=3;a=1;b rest")
			Expect(err).ToNot(HaveOccurred())

			var keys []string
			for tag := range tags.All() {
				keys = append(keys, tag.Key)
			}
			Expect(keys).To(Equal([]string{"c", "a", "b"}))
		})

		It("should distinguish an empty value from an absent one", func() {
			tags, _, err := ircv3tags.DebugParse("@empty=;bare rest")
			Expect(err).ToNot(HaveOccurred())

			byKey := map[string]ircv3tags.Tag{}
			for tag := range tags.All() {
				byKey[tag.Key] = tag
			}
			Expect(byKey["empty"].HasValue).To(BeTrue())
			Expect(byKey["bare"].HasValue).To(BeFalse())

			// both read back as "" through the lookup
			v, ok := tags.Get("empty")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(""))
			v, ok = tags.Get("bare")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(""))
		})

		It("should keep values raw", func() {
			tags, _, err := ircv3tags.DebugParse(`@msg=hello\sworld rest`)
			Expect(err).ToNot(HaveOccurred())
			v, ok := tags.Get("msg")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(`hello\sworld`))
			v, ok = tags.GetUnescaped("msg")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("hello world"))
		})

		It("should fail on input without the '@' marker", func() {
			_, _, err := ircv3tags.DebugParse("id=234AB rest")

			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(ircv3tags.KindNoTagMarker))
			Expect(perr.Code).To(Equal(ircv3tags.CodeChar))
			Expect(perr.Input).To(Equal("id=234AB rest"))
		})

		It("should fail on an empty tag list", func() {
			_, _, err := ircv3tags.DebugParse("@ rest")

			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(ircv3tags.KindIllegalStartChar))
			Expect(perr.Input).To(Equal(" rest"))
		})

		It("should fail without the delimiting space", func() {
			_, _, err := ircv3tags.DebugParse("@id=234AB")

			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(ircv3tags.KindGeneric))
			Expect(perr.Code).To(Equal(ircv3tags.CodeSpace))
			Expect(perr.Input).To(Equal(""))
		})

		It("should stop the list at a malformed tag and report the separator position", func() {
			_, _, err := ircv3tags.DebugParse("@a=1;-bad rest")

			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(ircv3tags.KindGeneric))
			Expect(perr.Code).To(Equal(ircv3tags.CodeSpace))
			Expect(perr.Input).To(Equal(";-bad rest"))
		})

		It("should report a missing key name past a consumed vendor prefix", func() {
			_, _, err := ircv3tags.DebugParse("@example.com/ rest")

			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(ircv3tags.KindIllegalStartChar))
			Expect(perr.Input).To(Equal(" rest"))
		})
	})

	Describe("Parse()", func() {
		It("should parse like DebugParse()", func() {
			tags, rest, err := ircv3tags.Parse("@id=234AB;bare :rest")
			Expect(err).ToNot(HaveOccurred())
			Expect(rest).To(Equal(":rest"))
			v, ok := tags.Get("id")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("234AB"))
		})

		It("should project failures down to a syntax error", func() {
			_, _, err := ircv3tags.Parse("no tags here")

			var serr *ircv3tags.SyntaxError
			Expect(errors.As(err, &serr)).To(BeTrue())
			Expect(serr.Code).To(Equal(ircv3tags.CodeChar))
			Expect(serr.Input).To(Equal("no tags here"))

			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeFalse())
		})
	})

	Describe("MustParse()", func() {
		It("should return the tags on valid input", func() {
			tags, rest := ircv3tags.MustParse("@id=1 rest")
			Expect(rest).To(Equal("rest"))
			v, ok := tags.Get("id")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("1"))
		})

		It("should panic on malformed input", func() {
			Expect(func() { ircv3tags.MustParse("bad") }).To(Panic())
		})
	})

	Describe("key-name policies", func() {
		It("should reject '_' under the standard policy", func() {
			_, _, err := ircv3tags.DebugParse("@user_id=1 rest")

			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Code).To(Equal(ircv3tags.CodeSpace))
			Expect(perr.Input).To(Equal("_id=1 rest"))
		})

		It("should accept '_' with WithUnderscore()", func() {
			tags, rest, err := ircv3tags.WithUnderscore().DebugParse("@user_id=1 rest")
			Expect(err).ToNot(HaveOccurred())
			Expect(rest).To(Equal("rest"))
			v, ok := tags.Get("user_id")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("1"))
		})

		It("should accept extra characters from a custom policy", func() {
			p := ircv3tags.CustomParser().AllowChars('.', '_').Build()

			tags, _, err := p.DebugParse("@key.sub_name=1 rest")
			Expect(err).ToNot(HaveOccurred())
			v, ok := tags.Get("key.sub_name")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("1"))
		})

		It("should accept extra start characters without allowing them past the first position", func() {
			p := ircv3tags.CustomParser().AllowStartChars('#').Build()

			tags, _, err := p.DebugParse("@#chan=1 rest")
			Expect(err).ToNot(HaveOccurred())
			v, ok := tags.Get("#chan")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("1"))

			_, _, err = p.DebugParse("@a#b=1 rest")
			var perr *ircv3tags.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Code).To(Equal(ircv3tags.CodeSpace))
		})
	})

	Describe("vendor keys", func() {
		It("should keep the verbatim key text", func() {
			tags, _, err := ircv3tags.DebugParse("@+example.com/key=value;draft/reply=1 rest")
			Expect(err).ToNot(HaveOccurred())
			v, ok := tags.Get("+example.com/key")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("value"))
			v, ok = tags.Get("draft/reply")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("1"))

			// the bare key name alone does not match a vendored key
			_, ok = tags.Get("key")
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("ValidateKeyName()", func() {
	It("should validate a whole key name", func() {
		Expect(ircv3tags.ValidateKeyName("tag-name")).To(BeTrue())
		Expect(ircv3tags.ValidateKeyName("tag-")).To(BeFalse())
		Expect(ircv3tags.ValidateKeyName("1tag")).To(BeFalse())
		Expect(ircv3tags.ValidateKeyName("")).To(BeFalse())
	})
})

var _ = Describe("ValidateVendor()", func() {
	It("should validate a whole vendor hostname", func() {
		Expect(ircv3tags.ValidateVendor("example.com")).To(BeTrue())
		Expect(ircv3tags.ValidateVendor("exam--ple.com")).To(BeFalse())
		Expect(ircv3tags.ValidateVendor("example.com/key")).To(BeFalse())
	})
})
