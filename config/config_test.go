package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/stackc/config"
)

var _ = Describe("Builder", func() {
	It("should apply defaults", func() {
		c := config.MakeBuilder().Build()

		Expect(c.OutputPath).To(Equal("./build/output.ssa"))
		Expect(c.OutputDir()).To(Equal("build"))
		Expect(c.StackLimit).To(Equal(0))
		Expect(c.SymbolPrefix).To(Equal("str"))
		Expect(c.StrictLex).To(BeFalse())
		Expect(c.Trace).To(BeFalse())
	})

	It("should keep explicit settings", func() {
		c := config.MakeBuilder().
			WithOutputPath("/tmp/out.ssa").
			WithStackLimit(16).
			WithSymbolPrefix("msg").
			WithStrictLex(true).
			WithTrace(true).
			Build()

		Expect(c).To(Equal(config.Config{
			OutputPath:   "/tmp/out.ssa",
			StackLimit:   16,
			SymbolPrefix: "msg",
			StrictLex:    true,
			Trace:        true,
		}))
	})

	It("should not share state between copies", func() {
		base := config.MakeBuilder()
		_ = base.WithOutputPath("a.ssa")

		Expect(base.Build().OutputPath).To(Equal(config.DefaultOutputPath))
	})

	It("should fall back on empty settings", func() {
		c := config.Builder{}.WithStackLimit(-3).Build()

		Expect(c.OutputPath).To(Equal(config.DefaultOutputPath))
		Expect(c.SymbolPrefix).To(Equal(config.DefaultSymbolPrefix))
		Expect(c.StackLimit).To(Equal(0))
	})
})

var _ = Describe("FromEnv", func() {
	var saved string
	var had bool

	BeforeEach(func() {
		saved, had = os.LookupEnv(config.EnvOutput)
	})

	AfterEach(func() {
		if had {
			os.Setenv(config.EnvOutput, saved)
		} else {
			os.Unsetenv(config.EnvOutput)
		}
	})

	It("should override the output path", func() {
		os.Setenv(config.EnvOutput, "/tmp/env.ssa")

		c := config.FromEnv(config.MakeBuilder()).Build()
		Expect(c.OutputPath).To(Equal("/tmp/env.ssa"))
	})

	It("should ignore an empty value", func() {
		os.Setenv(config.EnvOutput, "")

		c := config.FromEnv(config.MakeBuilder()).Build()
		Expect(c.OutputPath).To(Equal(config.DefaultOutputPath))
	})
})
