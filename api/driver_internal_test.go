package api

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	gomock "github.com/golang/mock/gomock"
	"github.com/joomcode/errorx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/diag"
)

const helloIR = "data $str0 = { b  \"hi\", b 0}\n" +
	"\n" +
	"export function w $main() {\n" +
	"@start\n" +
	"   %r =w call $puts(l $str0)\n" +
	"   %r =w call $exit(l 0)\n" +
	"   ret 0\n" +
	"}\n"

var _ = Describe("Driver", func() {
	var (
		mockCtrl *gomock.Controller
		sink     *MockSink
		driver   *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sink = NewMockSink(mockCtrl)

		driver = MakeDriverBuilder().
			WithSink(sink).
			Build("Driver").(*driverImpl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should queue sources with increasing IDs", func() {
		Expect(driver.AddSource("a.stk", "")).To(Equal(0))
		Expect(driver.AddSource("b.stk", "")).To(Equal(1))
		Expect(driver.tasks).To(HaveLen(2))

		id, ok := driver.TaskID("b.stk")
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(1))

		_, ok = driver.TaskID("c.stk")
		Expect(ok).To(BeFalse())
	})

	It("should write the IR of a good program", func() {
		sink.EXPECT().Write("hello.stk", []byte(helloIR)).Return(nil)

		driver.AddSource("hello.stk", `pushs "hi"; puts; pushi 0; exit;`)
		results := driver.Run()

		Expect(results).To(HaveLen(1))
		Expect(results[0].OK()).To(BeTrue())
		Expect(results[0].IR).To(Equal(helloIR))
		Expect(results[0].Program.Len()).To(Equal(4))
		Expect(driver.tasks).To(BeEmpty())
	})

	It("should not write when generation fails", func() {
		sink.EXPECT().Write(gomock.Any(), gomock.Any()).Times(0)

		driver.AddSource("bad.stk", "plusi;")
		results := driver.Run()

		Expect(results[0].OK()).To(BeFalse())
		Expect(results[0].IR).To(BeEmpty())
		Expect(errorx.IsOfType(results[0].Err, diag.StackUnderflow)).To(BeTrue())
	})

	It("should continue after lexical errors", func() {
		sink.EXPECT().Write("typo.stk", gomock.Any()).Return(nil)

		driver.AddSource("typo.stk", "pushi 1; bogus; exit;")
		results := driver.Run()

		Expect(results[0].OK()).To(BeTrue())
		Expect(results[0].LexErrors).To(HaveLen(1))
		Expect(results[0].IR).To(ContainSubstring("call $exit(l 1)"))
	})

	It("should stop on lexical errors in strict mode", func() {
		driver.cfg = config.MakeBuilder().WithStrictLex(true).Build()
		sink.EXPECT().Write(gomock.Any(), gomock.Any()).Times(0)

		driver.AddSource("typo.stk", "pushi 1; bogus; exit;")
		results := driver.Run()

		Expect(results[0].OK()).To(BeFalse())
		Expect(errorx.IsOfType(results[0].Err, diag.Lexical)).To(BeTrue())
	})

	It("should run tasks independently", func() {
		gomock.InOrder(
			sink.EXPECT().Write("one.stk", gomock.Any()).Return(nil),
			sink.EXPECT().Write("three.stk", gomock.Any()).Return(nil),
		)

		driver.AddSource("one.stk", `pushs "a"; puts;`)
		driver.AddSource("two.stk", "exit;")
		driver.AddSource("three.stk", `pushs "b"; puts;`)
		results := driver.Run()

		Expect(results).To(HaveLen(3))
		Expect(results[0].OK()).To(BeTrue())
		Expect(results[1].OK()).To(BeFalse())
		Expect(results[2].OK()).To(BeTrue())
		Expect(results[2].IR).To(ContainSubstring("data $str0 = { b  \"b\", b 0}"))
	})

	It("should report sink failures", func() {
		sink.EXPECT().Write(gomock.Any(), gomock.Any()).
			Return(diag.IO.Wrap(errors.New("disk full"), "failed to write"))

		driver.AddSource("x.stk", "pushi 0; exit;")
		results := driver.Run()

		Expect(errorx.IsOfType(results[0].Err, diag.IO)).To(BeTrue())
	})

	It("should apply the stack limit and symbol prefix", func() {
		driver.cfg = config.MakeBuilder().
			WithStackLimit(1).
			WithSymbolPrefix("msg").
			Build()
		sink.EXPECT().Write("ok.stk", gomock.Any()).Return(nil)

		driver.AddSource("deep.stk", "pushi 1; pushi 2; plusi; exit;")
		driver.AddSource("ok.stk", `pushs "hi"; puts;`)
		results := driver.Run()

		Expect(errorx.IsOfType(results[0].Err, diag.StackOverflow)).To(BeTrue())
		Expect(results[1].IR).To(ContainSubstring("$msg0"))
	})

	It("should trace when configured", func() {
		var buf bytes.Buffer
		driver.cfg = config.MakeBuilder().WithTrace(true).Build()
		driver.trace = &buf
		sink.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

		driver.AddSource("t.stk", "pushi 0; exit;")
		driver.Run()

		Expect(buf.String()).To(ContainSubstring("State@PC=1"))
	})
})

var _ = Describe("FileSink", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should write the file", func() {
		path := filepath.Join(dir, "output.ssa")

		Expect(FileSink{Path: path}.Write("x", []byte("ir"))).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("ir"))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("should replace an existing file", func() {
		path := filepath.Join(dir, "output.ssa")
		Expect(os.WriteFile(path, []byte("old content"), 0o644)).To(Succeed())

		Expect(FileSink{Path: path}.Write("x", []byte("new"))).To(Succeed())

		data, _ := os.ReadFile(path)
		Expect(string(data)).To(Equal("new"))
	})

	It("should fail on a missing directory", func() {
		err := FileSink{Path: filepath.Join(dir, "missing", "output.ssa")}.
			Write("x", []byte("ir"))

		Expect(errorx.IsOfType(err, diag.IO)).To(BeTrue())
	})

	It("should be the default sink", func() {
		path := filepath.Join(dir, "default.ssa")
		d := MakeDriverBuilder().
			WithConfig(config.MakeBuilder().WithOutputPath(path).Build()).
			Build("Driver")

		d.AddSource("a.stk", "pushi 3; exit;")
		results := d.Run()
		Expect(results[0].OK()).To(BeTrue())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("call $exit(l 3)"))
	})
})

var _ = Describe("DirSink", func() {
	It("should name files after the source", func() {
		dir := GinkgoT().TempDir()

		Expect(DirSink{Dir: dir}.Write("src/hello.stk", []byte("ir"))).To(Succeed())

		data, err := os.ReadFile(filepath.Join(dir, "hello.ssa"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("ir"))
	})
})

var _ = Describe("NameIDBinding", func() {
	It("should rebind a name to a fresh ID", func() {
		b := NewNameIDBinding()

		Expect(b.RegisterName("a")).To(Equal(0))
		Expect(b.RegisterName("a")).To(Equal(1))
		Expect(b.Len()).To(Equal(2))

		id, _ := b.LookupName("a")
		Expect(id).To(Equal(1))
		Expect(b.IDToName[0]).To(Equal("a"))
	})
})
