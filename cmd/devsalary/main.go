// Package main provides the devsalary CLI.
//
// devsalary asks SuperJob and HeadHunter how many vacancies exist for a fixed
// list of programming languages in Moscow, estimates a salary for every
// vacancy that states one in roubles and prints the per-language averages.
//
// Usage:
//
//	SUPERJOB_API_KEY=... devsalary
//	devsalary --source hh --format markdown
package main

func main() {
	Execute()
}
