package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"ecom/models"
	"ecom/repository"
)

// ---- in-memory fakes ----

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) findBy(match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if match(user) {
			found := user
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByPhone(phone string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Phone == phone })
}

func (r *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	_, err := r.FindByUsername(username)
	return !errors.Is(err, repository.ErrNotFound), nil
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	return !errors.Is(err, repository.ErrNotFound), nil
}

func (r *fakeUserRepo) ExistsByPhone(phone string) (bool, error) {
	_, err := r.FindByPhone(phone)
	return !errors.Is(err, repository.ErrNotFound), nil
}

func (r *fakeUserRepo) Save(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

type fakeAddressRepo struct {
	mu        sync.Mutex
	nextID    uint
	addresses map[uint]models.Address
}

var _ repository.AddressRepository = (*fakeAddressRepo)(nil)

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{nextID: 1, addresses: make(map[uint]models.Address)}
}

func (r *fakeAddressRepo) Create(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	address.ID = r.nextID
	r.nextID++
	r.addresses[address.ID] = *address
	return nil
}

func (r *fakeAddressRepo) FindByID(id uint) (*models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	address, ok := r.addresses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &address, nil
}

func (r *fakeAddressRepo) FindByUserID(userID uint) ([]models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var addresses []models.Address
	for _, address := range r.addresses {
		if address.UserID == userID {
			addresses = append(addresses, address)
		}
	}
	return addresses, nil
}

func (r *fakeAddressRepo) Save(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses[address.ID] = *address
	return nil
}

func (r *fakeAddressRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.addresses, id)
	return nil
}

func (r *fakeAddressRepo) ClearDefault(userID uint, exceptID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, address := range r.addresses {
		if address.UserID == userID && address.IsDefault && id != exceptID {
			address.IsDefault = false
			r.addresses[id] = address
		}
	}
	return nil
}

func (r *fakeAddressRepo) SetDefault(userID uint, id uint) error {
	if err := r.ClearDefault(userID, id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	address, ok := r.addresses[id]
	if !ok || address.UserID != userID {
		return repository.ErrNotFound
	}
	address.IsDefault = true
	r.addresses[id] = address
	return nil
}

type fakePaymentRepo struct {
	mu      sync.Mutex
	nextID  uint
	methods map[uint]models.PaymentMethod
}

var _ repository.PaymentMethodRepository = (*fakePaymentRepo)(nil)

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{nextID: 1, methods: make(map[uint]models.PaymentMethod)}
}

func (r *fakePaymentRepo) Create(method *models.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	method.ID = r.nextID
	r.nextID++
	r.methods[method.ID] = *method
	return nil
}

func (r *fakePaymentRepo) FindByID(id uint) (*models.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	method, ok := r.methods[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &method, nil
}

func (r *fakePaymentRepo) FindByUserID(userID uint) ([]models.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var methods []models.PaymentMethod
	for _, method := range r.methods {
		if method.UserID == userID {
			methods = append(methods, method)
		}
	}
	return methods, nil
}

func (r *fakePaymentRepo) Save(method *models.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[method.ID] = *method
	return nil
}

func (r *fakePaymentRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.methods, id)
	return nil
}

func (r *fakePaymentRepo) ClearDefault(userID uint, exceptID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, method := range r.methods {
		if method.UserID == userID && method.IsDefault && id != exceptID {
			method.IsDefault = false
			r.methods[id] = method
		}
	}
	return nil
}

func (r *fakePaymentRepo) SetDefault(userID uint, id uint) error {
	if err := r.ClearDefault(userID, id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	method, ok := r.methods[id]
	if !ok || method.UserID != userID {
		return repository.ErrNotFound
	}
	method.IsDefault = true
	r.methods[id] = method
	return nil
}

type fakeOrderRepo struct {
	mu         sync.Mutex
	nextID     uint
	nextItemID uint
	orders     map[uint]models.Order
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, nextItemID: 1, orders: make(map[uint]models.Order)}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	for i := range order.Items {
		order.Items[i].ID = r.nextItemID
		r.nextItemID++
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (r *fakeOrderRepo) FindByIDAndUserID(id uint, userID uint) (*models.Order, error) {
	order, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) FindByUserID(userID uint) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var orders []models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) Save(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   uint
	products map[uint]models.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[uint]models.Product)}
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &product, nil
}

func (r *fakeProductRepo) FindAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

func (r *fakeProductRepo) Search(keyword string) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keyword = strings.ToLower(keyword)
	var products []models.Product
	for _, product := range r.products {
		haystack := strings.ToLower(product.Name + " " + product.Description + " " + product.Brand + " " + product.Category)
		if strings.Contains(haystack, keyword) {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type fakeIssuer struct {
	mu      sync.Mutex
	issued  int
	revoked []string
}

var _ TokenIssuer = (*fakeIssuer)(nil)

func (f *fakeIssuer) Issue(ctx context.Context, username string, role string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	return "token-" + username, nil
}

func (f *fakeIssuer) Revoke(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, token)
	return nil
}

// ---- helpers ----

func newTestUserService() (*UserService, *fakeUserRepo, *fakeAddressRepo, *fakePaymentRepo) {
	users := newFakeUserRepo()
	addresses := newFakeAddressRepo()
	payments := newFakePaymentRepo()
	svc := NewUserService(users, addresses, payments, &fakeIssuer{})
	return svc, users, addresses, payments
}

func mustRegister(t *testing.T, svc *UserService, username, email, phone, password string) *models.User {
	t.Helper()
	if err := svc.Register(username, email, phone, password); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	user, err := svc.users.FindByUsername(username)
	if err != nil {
		t.Fatalf("find %s after register: %v", username, err)
	}
	return user
}

func wantConflict(t *testing.T, err error, message string) {
	t.Helper()
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Message != message {
		t.Fatalf("expected message %q, got %q", message, conflict.Message)
	}
}

func wantValidation(t *testing.T, err error) {
	t.Helper()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func wantNotFound(t *testing.T, err error) {
	t.Helper()
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func wantAuthorization(t *testing.T, err error) {
	t.Helper()
	var authz *AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}
