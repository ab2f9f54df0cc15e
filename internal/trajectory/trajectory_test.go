package trajectory_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nav-tools/mppiplot/internal/trajectory"
)

func writeSweepFile(content string) string {
	dir, err := os.MkdirTemp("", "trajectory")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(os.RemoveAll, dir)

	path := filepath.Join(dir, "trajectory.csv")
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	It("parses records in file order", func() {
		path := writeSweepFile("50,0,0.1\n50,0.1,0.3\n48,0,0.2\n")

		recs, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(Equal([]trajectory.Record{
			{PathLength: 50, Step: 0, X: 0.1},
			{PathLength: 50, Step: 0.1, X: 0.3},
			{PathLength: 48, Step: 0, X: 0.2},
		}))
	})

	It("skips comment and blank lines", func() {
		path := writeSweepFile("#k,r,x\n\n10,0,1.0\n##10,0,80,3,0.6\n10,0.1,1.5\n")

		recs, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(2))
		Expect(recs[0].X).To(Equal(1.0))
		Expect(recs[1].X).To(Equal(1.5))
	})

	It("does not treat an indented hash as a comment", func() {
		path := writeSweepFile("10,0,1.0\n  # not a comment\n")

		_, err := trajectory.Load(path)
		Expect(err).To(HaveOccurred())
	})

	It("keeps duplicate samples", func() {
		path := writeSweepFile("10,0,1.0\n10,0,1.0\n")

		recs, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(2))
	})

	It("fails when a line has the wrong number of fields", func() {
		path := writeSweepFile("10,0,1.0\n10,1\n10,2,4.0\n")

		recs, err := trajectory.Load(path)
		Expect(err).To(MatchError(ContainSubstring("wrong number of fields")))
		Expect(recs).To(BeNil())
	})

	It("fails with the line number when a value is not numeric", func() {
		path := writeSweepFile("# header\n10,0,1.0\n30,0,oops\n")

		recs, err := trajectory.Load(path)
		Expect(err).To(MatchError(ContainSubstring("not a valid number")))
		Expect(err).To(MatchError(ContainSubstring(":3:")))
		Expect(recs).To(BeNil())
	})

	It("fails when the file does not exist", func() {
		_, err := trajectory.Load(filepath.Join(os.TempDir(), "no-such-trajectory.csv"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("GroupByPathLength", func() {
	It("partitions the example sweep into two ordered groups", func() {
		path := writeSweepFile("# comment\n10,0,1.0\n10,1,2.0\n10,2,4.0\n30,0,5.0\n30,1,5.5\n")

		recs, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())

		groups := trajectory.GroupByPathLength(recs)
		Expect(groups).To(HaveLen(2))

		Expect(groups[0].PathLength).To(Equal(10.0))
		Expect(groups[0].X).To(Equal([]float64{1.0, 2.0, 4.0}))
		Expect(groups[0].Steps).To(Equal([]float64{0, 1, 2}))

		Expect(groups[1].PathLength).To(Equal(30.0))
		Expect(groups[1].X).To(Equal([]float64{5.0, 5.5}))
	})

	It("covers every record exactly once", func() {
		recs := []trajectory.Record{
			{PathLength: 50, Step: 0, X: 1},
			{PathLength: 10, Step: 0, X: 2},
			{PathLength: 50, Step: 1, X: 3},
			{PathLength: 10, Step: 1, X: 4},
		}

		groups := trajectory.GroupByPathLength(recs)

		total := 0
		for _, g := range groups {
			Expect(g.Steps).To(HaveLen(g.Len()))
			total += g.Len()
		}
		Expect(total).To(Equal(len(recs)))
	})

	It("separates keys that differ by exact float equality", func() {
		recs := []trajectory.Record{
			{PathLength: 10, Step: 0, X: 1},
			{PathLength: 10.5, Step: 0, X: 2},
		}
		Expect(trajectory.GroupByPathLength(recs)).To(HaveLen(2))
	})

	It("labels groups with their path_length", func() {
		g := &trajectory.Group{PathLength: 30}
		Expect(g.Label()).To(Equal("path_length=30"))
	})
})

var _ = Describe("LoadSweep", func() {
	It("parses the 11-column velocity-response format", func() {
		path := writeSweepFile(
			"#k,j,i,vx_max,vx_std,wz_max,wz_std,vx_in,wz_in,cmd_vel_vx,cmd_vel_wz\n" +
				"0,0,0,3.0,0.6,0.52,0.1,0.0,0.0,0.31,0.01\n" +
				"0,0,1,3.0,0.6,0.52,0.1,0.31,0.01,0.58,0.02\n")

		recs, err := trajectory.LoadSweep(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(2))
		Expect(recs[0].VxMax).To(Equal(3.0))
		Expect(recs[1].Iter).To(Equal(1.0))
		Expect(recs[1].CmdVelVx).To(Equal(0.58))
	})

	It("rejects trajectory-format rows", func() {
		path := writeSweepFile("10,0,1.0\n")

		_, err := trajectory.LoadSweep(path)
		Expect(err).To(MatchError(ContainSubstring("wrong number of fields")))
	})
})

var _ = Describe("GroupSweep", func() {
	It("groups rows by the full settings tuple in first-seen order", func() {
		recs := []trajectory.SweepRecord{
			{K: 0, J: 0, VxMax: 3, VxStd: 0.6, WzMax: 0.52, WzStd: 0.1, Iter: 0, CmdVelVx: 0.1},
			{K: 0, J: 1, VxMax: 3, VxStd: 0.6, WzMax: 0.52, WzStd: 0.1, Iter: 0, CmdVelVx: 0.2},
			{K: 0, J: 0, VxMax: 3, VxStd: 0.6, WzMax: 0.52, WzStd: 0.1, Iter: 1, CmdVelVx: 0.3},
		}

		groups := trajectory.GroupSweep(recs)
		Expect(groups).To(HaveLen(2))
		Expect(groups[0].Key.J).To(Equal(0.0))
		Expect(groups[0].CmdVelVx).To(Equal([]float64{0.1, 0.3}))
		Expect(groups[1].Key.J).To(Equal(1.0))
	})

	It("describes runs by their constraint and noise settings", func() {
		g := &trajectory.SweepGroup{Key: trajectory.SweepKey{VxMax: 3, VxStd: 0.6, WzMax: 0.52, WzStd: 0.1}}
		Expect(g.Label()).To(Equal("vx_max=3, vx_std=0.6, wz_max=0.52, wz_std=0.1"))
	})
})
