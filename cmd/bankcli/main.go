package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/lib/pq"

	"bankledger-backend/internal/config"
	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/logger"
	"bankledger-backend/internal/money"
	"bankledger-backend/internal/repository/postgres"
	"bankledger-backend/internal/service"
)

// bankMenu is the terminal front end. It is a pure presentation layer: every
// operation is a synchronous call into the services, and failure messages are
// printed verbatim.
type bankMenu struct {
	customers service.CustomerService
	accounts  service.AccountService
	transfers service.TransferService
	loans     service.LoanService
	employees service.EmployeeService
	in        *bufio.Scanner
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// Keep interactive output clean unless debugging.
	logger.Initialize("error", cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	storeTimeout := cfg.Store.Timeout()
	accountSvc := service.NewAccountService(store.AccountRepository, store.TransactionRepository, store.CustomerRepository, storeTimeout)

	menu := &bankMenu{
		customers: service.NewCustomerService(store.CustomerRepository, storeTimeout),
		accounts:  accountSvc,
		transfers: service.NewTransferService(accountSvc, store.TransferRepository, storeTimeout),
		loans:     service.NewLoanService(store.LoanRepository, store.RepaymentRepository, store.CustomerRepository, storeTimeout),
		employees: service.NewEmployeeService(store.EmployeeRepository, storeTimeout),
		in:        bufio.NewScanner(os.Stdin),
	}
	menu.run()
}

func (m *bankMenu) run() {
	for {
		fmt.Println("\nBank Management System Menu")
		fmt.Println("1. Add Customer")
		fmt.Println("2. List Customers")
		fmt.Println("3. Open Account")
		fmt.Println("4. Deposit")
		fmt.Println("5. Withdraw")
		fmt.Println("6. Transfer")
		fmt.Println("7. Apply Loan")
		fmt.Println("8. Repay Loan")
		fmt.Println("9. List Loans")
		fmt.Println("10. Add Employee")
		fmt.Println("0. Exit")

		switch m.prompt("Enter your choice: ") {
		case "1":
			m.addCustomer()
		case "2":
			m.listCustomers()
		case "3":
			m.openAccount()
		case "4":
			m.deposit()
		case "5":
			m.withdraw()
		case "6":
			m.transfer()
		case "7":
			m.applyLoan()
		case "8":
			m.repayLoan()
		case "9":
			m.listLoans()
		case "10":
			m.addEmployee()
		case "0":
			fmt.Println("Exiting the program.")
			return
		default:
			fmt.Println("Invalid choice. Please enter a valid number from the menu.")
		}
	}
}

func (m *bankMenu) prompt(label string) string {
	fmt.Print(label)
	if !m.in.Scan() {
		return "0"
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *bankMenu) promptID(label string) (int64, bool) {
	id, err := strconv.ParseInt(m.prompt(label), 10, 64)
	if err != nil || id <= 0 {
		fmt.Println("Error: a positive numeric id is required")
		return 0, false
	}
	return id, true
}

func (m *bankMenu) promptAmount(label string) (int64, bool) {
	cents, err := money.ParseCents(m.prompt(label))
	if err != nil {
		fmt.Println("Error:", err)
		return 0, false
	}
	return cents, true
}

func (m *bankMenu) addCustomer() {
	name := m.prompt("Name: ")
	email := m.prompt("Email: ")
	phone := m.prompt("Phone (optional): ")
	city := m.prompt("City (optional): ")
	address := m.prompt("Address (optional): ")
	customer, err := m.customers.CreateCustomer(context.Background(), name, email, phone, city, address)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Customer created: #%d %s <%s>\n", customer.ID, customer.Name, customer.Email)
}

func (m *bankMenu) listCustomers() {
	customers, err := m.customers.ListCustomers(context.Background())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, c := range customers {
		fmt.Printf("#%d %s <%s> %s %s\n", c.ID, c.Name, c.Email, c.Phone, c.City)
	}
	if len(customers) == 0 {
		fmt.Println("No customers found.")
	}
}

func (m *bankMenu) openAccount() {
	customerID, ok := m.promptID("Customer ID: ")
	if !ok {
		return
	}
	accountType := m.prompt("Account Type (Savings/Checking/Current): ")
	account, err := m.accounts.OpenAccount(context.Background(), customerID, domain.AccountType(accountType))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Account #%d opened (%s) for customer #%d\n", account.ID, account.Type, account.CustomerID)
}

func (m *bankMenu) deposit() {
	accountID, ok := m.promptID("Account ID: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount: ")
	if !ok {
		return
	}
	_, newBalance, err := m.accounts.Deposit(context.Background(), accountID, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Deposited %s. New balance: %s\n", money.FormatCents(amount), money.FormatCents(newBalance))
}

func (m *bankMenu) withdraw() {
	accountID, ok := m.promptID("Account ID: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount: ")
	if !ok {
		return
	}
	_, newBalance, err := m.accounts.Withdraw(context.Background(), accountID, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Withdrew %s. New balance: %s\n", money.FormatCents(amount), money.FormatCents(newBalance))
}

func (m *bankMenu) transfer() {
	fromID, ok := m.promptID("From Account ID: ")
	if !ok {
		return
	}
	toID, ok := m.promptID("To Account ID: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount: ")
	if !ok {
		return
	}
	transfer, err := m.transfers.Transfer(context.Background(), fromID, toID, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Transferred %s from #%d to #%d (reference %s)\n",
		money.FormatCents(transfer.AmountCents), transfer.FromAccountID, transfer.ToAccountID, transfer.Reference)
}

func (m *bankMenu) applyLoan() {
	customerID, ok := m.promptID("Customer ID: ")
	if !ok {
		return
	}
	loanType := m.prompt("Loan Type (Personal/Home/Car/Education): ")
	amount, ok := m.promptAmount("Loan Amount: ")
	if !ok {
		return
	}
	rate, err := strconv.ParseFloat(m.prompt("Interest Rate (%): "), 64)
	if err != nil {
		fmt.Println("Error: invalid interest rate")
		return
	}
	loan, err := m.loans.ApplyForLoan(context.Background(), customerID, loanType, amount, rate)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Loan #%d created: %s %s at %.2f%% (%s)\n",
		loan.ID, loan.Type, money.FormatCents(loan.PrincipalCents), loan.InterestRate, loan.Status)
}

func (m *bankMenu) repayLoan() {
	loanID, ok := m.promptID("Loan ID: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Repayment Amount: ")
	if !ok {
		return
	}
	_, remaining, err := m.loans.MakeRepayment(context.Background(), loanID, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Repaid %s. Remaining: %s\n", money.FormatCents(amount), money.FormatCents(remaining))
}

func (m *bankMenu) listLoans() {
	customerID, ok := m.promptID("Customer ID: ")
	if !ok {
		return
	}
	loans, err := m.loans.GetLoansByCustomer(context.Background(), customerID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, l := range loans {
		fmt.Printf("Loan #%d: %s %s at %.2f%%: %s\n",
			l.ID, l.Type, money.FormatCents(l.PrincipalCents), l.InterestRate, l.Status)
	}
	if len(loans) == 0 {
		fmt.Println("No loans found for this customer.")
	}
}

func (m *bankMenu) addEmployee() {
	name := m.prompt("Name: ")
	role := m.prompt("Role: ")
	email := m.prompt("Email: ")
	phone := m.prompt("Phone (optional): ")
	password := m.prompt("Password: ")
	employee, err := m.employees.AddEmployee(context.Background(), name, role, email, phone, password)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Employee #%d added: %s (%s)\n", employee.ID, employee.Name, employee.Role)
}
