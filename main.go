package main

import "github.com/gordonhealth/staff-portal/cmd"

func main() {
	cmd.Execute()
}
