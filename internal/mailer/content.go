package mailer

import (
	"bytes"
	"html/template"

	"github.com/acasiostore/storefront-golang/internal/config"
	"github.com/acasiostore/storefront-golang/internal/models"
	"github.com/acasiostore/storefront-golang/internal/pricing"
)

// OrderContent is the pair of rendered messages for one order.
type OrderContent struct {
	CustomerHTML string
	AdminHTML    string
}

type contentData struct {
	Order models.OrderSnapshot
	Store config.StoreInfo
}

var emailFuncs = template.FuncMap{
	"money": pricing.FormatMoney,
}

var customerTmpl = template.Must(template.New("customer").Funcs(emailFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background-color: #f8f9fa; padding: 20px; text-align: center; }
  .order-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
  .order-table td, .order-table th { padding: 10px; border-bottom: 1px solid #ddd; }
  .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Thank You for Your Order!</h1></div>

  <p>Dear <strong>{{.Order.Customer.Name}}</strong>,</p>
  <p>Your order <strong>{{.Order.Reference}}</strong> has been received successfully. We will process it within 24 hours and contact you for confirmation.</p>

  <h3>Order Summary:</h3>
  <table class="order-table">
    <thead>
      <tr style="background-color: #f8f9fa;">
        <th style="text-align: left;">Product</th>
        <th style="text-align: center;">Qty</th>
        <th style="text-align: right;">Price</th>
        <th style="text-align: right;">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Order.Lines}}
      <tr>
        <td>{{.Product.Name}}</td>
        <td style="text-align: center;">{{.Quantity}}</td>
        <td style="text-align: right;">{{.Product.Currency}}{{money .UnitPrice}}</td>
        <td style="text-align: right;">{{.Product.Currency}}{{money .LineTotal}}</td>
      </tr>
      {{end}}
      <tr>
        <td colspan="3" style="text-align: right; font-weight: bold;">Total Amount:</td>
        <td style="text-align: right; font-weight: bold;">{{.Order.Currency}}{{money .Order.Total}}</td>
      </tr>
    </tbody>
  </table>

  <h3>Customer Information:</h3>
  <ul>
    <li><strong>Name:</strong> {{.Order.Customer.Name}}</li>
    <li><strong>Email:</strong> {{.Order.Customer.Email}}</li>
    <li><strong>Phone:</strong> {{.Order.Customer.Phone1}}</li>
    <li><strong>Address:</strong> {{.Order.Customer.Address}}</li>
  </ul>

  <p><strong>Payment Method:</strong> Cash on Delivery</p>
  <p><strong>Estimated Delivery:</strong> {{.Store.DeliveryEstimate}}</p>

  <p>We will contact you shortly for order confirmation and delivery details.</p>
  <p>Thank you for shopping with {{.Store.Name}}!</p>

  <div class="footer">
    <p>{{.Store.Name}}<br>
    Phone: {{.Store.Phone}}<br>
    Email: {{.Store.Email}}</p>
  </div>
</div>
</body>
</html>
`))

var adminTmpl = template.Must(template.New("admin").Funcs(emailFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .alert { background-color: #d4edda; color: #155724; padding: 15px; border-radius: 5px; }
  .order-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
  .order-table td, .order-table th { padding: 10px; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<div class="container">
  <div class="alert">
    <h2>New Order Received!</h2>
    <p>Order {{.Order.Reference}} placed at: {{.Order.PlacedAt.Format "2006-01-02 15:04:05"}}</p>
  </div>

  <h3>Customer Information:</h3>
  <ul>
    <li><strong>Name:</strong> {{.Order.Customer.Name}}</li>
    <li><strong>Email:</strong> {{.Order.Customer.Email}}</li>
    <li><strong>Phone 1:</strong> {{.Order.Customer.Phone1}}</li>
    <li><strong>Phone 2:</strong> {{.Order.Customer.Phone2}}</li>
    <li><strong>Address:</strong> {{.Order.Customer.Address}}</li>
  </ul>

  <h3>Order Details:</h3>
  <table class="order-table">
    <thead>
      <tr style="background-color: #f8f9fa;">
        <th style="text-align: left;">Product</th>
        <th style="text-align: center;">Qty</th>
        <th style="text-align: right;">Price</th>
        <th style="text-align: right;">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Order.Lines}}
      <tr>
        <td>{{.Product.Name}}</td>
        <td style="text-align: center;">{{.Quantity}}</td>
        <td style="text-align: right;">{{.Product.Currency}}{{money .UnitPrice}}</td>
        <td style="text-align: right;">{{.Product.Currency}}{{money .LineTotal}}</td>
      </tr>
      {{end}}
      <tr>
        <td colspan="3" style="text-align: right; font-weight: bold;">Total Amount:</td>
        <td style="text-align: right; font-weight: bold;">{{.Order.Currency}}{{money .Order.Total}}</td>
      </tr>
    </tbody>
  </table>

  <p><strong>Payment Method:</strong> Cash on Delivery</p>
  <p><strong>Action Required:</strong> Contact customer within 24 hours to confirm order.</p>

  <hr>
  <p><small>This is an automated email from the {{.Store.Name}} order system.</small></p>
</div>
</body>
</html>
`))

// BuildOrderContent renders the customer receipt and the admin alert
// for one order snapshot. Pure: same snapshot, same output.
func BuildOrderContent(order models.OrderSnapshot, store config.StoreInfo) (OrderContent, error) {
	data := contentData{Order: order, Store: store}

	var customer bytes.Buffer
	if err := customerTmpl.Execute(&customer, data); err != nil {
		return OrderContent{}, err
	}

	var admin bytes.Buffer
	if err := adminTmpl.Execute(&admin, data); err != nil {
		return OrderContent{}, err
	}

	return OrderContent{
		CustomerHTML: customer.String(),
		AdminHTML:    admin.String(),
	}, nil
}
