package main

import "github.com/saylorsolutions/cmdtree"

// buildRegistry declares the demo hierarchy: job control and user management.
func buildRegistry() *cmdtree.Registry {
	reg := cmdtree.New()

	jobs := reg.Group("jobs")
	jobs.Command("list", listJobs)
	jobs.Command("start", startJob).Options("nice", "max-mem")
	jobs.Command("stop", stopJob)

	users := reg.Group("users")
	users.Command("add", addUser)
	users.Command("remove", removeUser)
	users.Command("list", listUsers)

	return reg
}

func listJobs(_ cmdtree.Options, out *cmdtree.Printer) error {
	out.Println("Listing jobs...")
	return nil
}

func startJob(opts cmdtree.Options, out *cmdtree.Printer) error {
	nice := opts.String("nice", "0")
	maxMem := opts.String("max-mem", "64k")
	out.Printf("Starting job with nice=%s and max_mem=%s\n", nice, maxMem)
	return nil
}

func stopJob(_ cmdtree.Options, out *cmdtree.Printer) error {
	out.Println("Stopping job...")
	return nil
}

func addUser(_ cmdtree.Options, out *cmdtree.Printer) error {
	out.Println("Adding user...")
	return nil
}

func removeUser(_ cmdtree.Options, out *cmdtree.Printer) error {
	out.Println("Removing user...")
	return nil
}

func listUsers(_ cmdtree.Options, out *cmdtree.Printer) error {
	out.Println("Listing users...")
	return nil
}
