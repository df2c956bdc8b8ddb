package catalog

// builtinComponents is the shipped component table. Order matters: it is the
// tie-break order for both lookup and ranked search.
func builtinComponents() []ComponentRecord {
	return []ComponentRecord{
		// Form
		{
			Key:           "button",
			DisplayName:   "Button",
			PackageName:   "@radix-ui/react-slot",
			ImportSnippet: `import { Button } from "@/components/ui/button"`,
			UsageSnippet:  `<Button variant="outline">Click me</Button>`,
			Description:   "Displays a button or a component that looks like a button, with variants for primary, secondary, outline, ghost and link styles.",
			Category:      CategoryForm,
			Tags:          []string{"button", "click", "action", "cta", "submit"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "input",
			DisplayName:   "Input",
			PackageName:   "react",
			ImportSnippet: `import { Input } from "@/components/ui/input"`,
			UsageSnippet:  `<Input type="email" placeholder="Email" />`,
			Description:   "Displays a form input field for text, email, password and other single line values.",
			Category:      CategoryForm,
			Tags:          []string{"input", "text field", "form field", "email", "password"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "textarea",
			DisplayName:   "Textarea",
			PackageName:   "react",
			ImportSnippet: `import { Textarea } from "@/components/ui/textarea"`,
			UsageSnippet:  `<Textarea placeholder="Type your message here." />`,
			Description:   "Displays a multi line text input for longer messages and comments.",
			Category:      CategoryForm,
			Tags:          []string{"textarea", "multiline", "message", "comment"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "label",
			DisplayName:   "Label",
			PackageName:   "@radix-ui/react-label",
			ImportSnippet: `import { Label } from "@/components/ui/label"`,
			UsageSnippet:  `<Label htmlFor="email">Your email address</Label>`,
			Description:   "Renders an accessible label associated with a form control.",
			Category:      CategoryForm,
			Tags:          []string{"label", "caption", "accessibility"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "checkbox",
			DisplayName:   "Checkbox",
			PackageName:   "@radix-ui/react-checkbox",
			ImportSnippet: `import { Checkbox } from "@/components/ui/checkbox"`,
			UsageSnippet:  `<Checkbox id="terms" />`,
			Description:   "A control that allows the user to toggle between checked and not checked.",
			Category:      CategoryForm,
			Tags:          []string{"checkbox", "check", "toggle", "agree"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "select",
			DisplayName:   "Select",
			PackageName:   "@radix-ui/react-select",
			ImportSnippet: `import { Select, SelectContent, SelectItem, SelectTrigger, SelectValue } from "@/components/ui/select"`,
			UsageSnippet: `<Select>
  <SelectTrigger className="w-[180px]">
    <SelectValue placeholder="Theme" />
  </SelectTrigger>
  <SelectContent>
    <SelectItem value="light">Light</SelectItem>
    <SelectItem value="dark">Dark</SelectItem>
  </SelectContent>
</Select>`,
			Description: "Displays a list of options for the user to pick from, triggered by a button.",
			Category:    CategoryForm,
			Tags:        []string{"select", "picker", "options", "choice"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "switch",
			DisplayName:   "Switch",
			PackageName:   "@radix-ui/react-switch",
			ImportSnippet: `import { Switch } from "@/components/ui/switch"`,
			UsageSnippet:  `<Switch id="airplane-mode" />`,
			Description:   "A control that allows the user to toggle a setting on and off.",
			Category:      CategoryForm,
			Tags:          []string{"switch", "toggle", "on off", "setting"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "radio-group",
			DisplayName:   "Radio Group",
			PackageName:   "@radix-ui/react-radio-group",
			ImportSnippet: `import { RadioGroup, RadioGroupItem } from "@/components/ui/radio-group"`,
			UsageSnippet: `<RadioGroup defaultValue="comfortable">
  <RadioGroupItem value="default" id="r1" />
  <RadioGroupItem value="comfortable" id="r2" />
</RadioGroup>`,
			Description: "A set of checkable items where no more than one can be checked at a time.",
			Category:    CategoryForm,
			Tags:        []string{"radio", "choice", "single select"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "form",
			DisplayName:   "Form",
			PackageName:   "react-hook-form",
			ImportSnippet: `import { Form, FormControl, FormField, FormItem, FormLabel, FormMessage } from "@/components/ui/form"`,
			UsageSnippet: `<Form {...form}>
  <form onSubmit={form.handleSubmit(onSubmit)}>
    <FormField control={form.control} name="username" render={({ field }) => (
      <FormItem>
        <FormLabel>Username</FormLabel>
        <FormControl><Input {...field} /></FormControl>
        <FormMessage />
      </FormItem>
    )} />
  </form>
</Form>`,
			Description: "Building forms with react-hook-form and zod validation, with accessible labels and error messages.",
			Category:    CategoryForm,
			Tags:        []string{"form", "validation", "signup", "login", "contact"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "input-otp",
			DisplayName:   "Input OTP",
			PackageName:   "input-otp",
			ImportSnippet: `import { InputOTP, InputOTPGroup, InputOTPSlot } from "@/components/ui/input-otp"`,
			UsageSnippet: `<InputOTP maxLength={6}>
  <InputOTPGroup>
    <InputOTPSlot index={0} />
    <InputOTPSlot index={1} />
    <InputOTPSlot index={2} />
  </InputOTPGroup>
</InputOTP>`,
			Description: "Accessible one-time password input with copy paste support.",
			Category:    CategoryForm,
			Tags:        []string{"otp", "verification", "code", "2fa"},
			Library:     LibraryShadcn,
		},

		// Layout
		{
			Key:           "card",
			DisplayName:   "Card",
			PackageName:   "react",
			ImportSnippet: `import { Card, CardContent, CardDescription, CardFooter, CardHeader, CardTitle } from "@/components/ui/card"`,
			UsageSnippet: `<Card>
  <CardHeader>
    <CardTitle>Card Title</CardTitle>
    <CardDescription>Card Description</CardDescription>
  </CardHeader>
  <CardContent>Content</CardContent>
  <CardFooter>Footer</CardFooter>
</Card>`,
			Description: "Displays a card with header, content and footer, the basic container for features, pricing plans and testimonials.",
			Category:    CategoryLayout,
			Tags:        []string{"card", "container", "panel", "tile"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "separator",
			DisplayName:   "Separator",
			PackageName:   "@radix-ui/react-separator",
			ImportSnippet: `import { Separator } from "@/components/ui/separator"`,
			UsageSnippet:  `<Separator className="my-4" />`,
			Description:   "Visually or semantically separates content.",
			Category:      CategoryLayout,
			Tags:          []string{"separator", "divider", "line", "hr"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "tabs",
			DisplayName:   "Tabs",
			PackageName:   "@radix-ui/react-tabs",
			ImportSnippet: `import { Tabs, TabsContent, TabsList, TabsTrigger } from "@/components/ui/tabs"`,
			UsageSnippet: `<Tabs defaultValue="account">
  <TabsList>
    <TabsTrigger value="account">Account</TabsTrigger>
    <TabsTrigger value="password">Password</TabsTrigger>
  </TabsList>
  <TabsContent value="account">Account settings.</TabsContent>
  <TabsContent value="password">Change your password.</TabsContent>
</Tabs>`,
			Description: "A set of layered sections of content, known as tab panels, displayed one at a time.",
			Category:    CategoryLayout,
			Tags:        []string{"tabs", "panels", "switcher"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "accordion",
			DisplayName:   "Accordion",
			PackageName:   "@radix-ui/react-accordion",
			ImportSnippet: `import { Accordion, AccordionContent, AccordionItem, AccordionTrigger } from "@/components/ui/accordion"`,
			UsageSnippet: `<Accordion type="single" collapsible>
  <AccordionItem value="item-1">
    <AccordionTrigger>Is it accessible?</AccordionTrigger>
    <AccordionContent>Yes. It adheres to the WAI-ARIA design pattern.</AccordionContent>
  </AccordionItem>
</Accordion>`,
			Description: "A vertically stacked set of interactive headings that each reveal a section of content, ideal for faq sections.",
			Category:    CategoryLayout,
			Tags:        []string{"accordion", "faq", "collapsible", "expand"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "sheet",
			DisplayName:   "Sheet",
			PackageName:   "@radix-ui/react-dialog",
			ImportSnippet: `import { Sheet, SheetContent, SheetDescription, SheetHeader, SheetTitle, SheetTrigger } from "@/components/ui/sheet"`,
			UsageSnippet: `<Sheet>
  <SheetTrigger>Open</SheetTrigger>
  <SheetContent>
    <SheetHeader>
      <SheetTitle>Are you absolutely sure?</SheetTitle>
      <SheetDescription>This action cannot be undone.</SheetDescription>
    </SheetHeader>
  </SheetContent>
</Sheet>`,
			Description: "Extends the dialog to display content that complements the main screen, such as a mobile menu or side panel.",
			Category:    CategoryLayout,
			Tags:        []string{"sheet", "drawer", "side panel", "mobile menu"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "bento-grid",
			DisplayName:   "Bento Grid",
			PackageName:   "motion",
			ImportSnippet: `import { BentoCard, BentoGrid } from "@/components/magicui/bento-grid"`,
			UsageSnippet: `<BentoGrid>
  {features.map((feature) => (
    <BentoCard key={feature.name} {...feature} />
  ))}
</BentoGrid>`,
			Description: "Bento grid layout for showcasing the features of a product in a simple and elegant way.",
			Category:    CategoryLayout,
			Tags:        []string{"grid", "features", "showcase", "bento"},
			Library:     LibraryMagicUI,
		},
		{
			Key:           "marquee",
			DisplayName:   "Marquee",
			PackageName:   "motion",
			ImportSnippet: `import { Marquee } from "@/components/magicui/marquee"`,
			UsageSnippet: `<Marquee pauseOnHover className="[--duration:20s]">
  {reviews.map((review) => (
    <ReviewCard key={review.username} {...review} />
  ))}
</Marquee>`,
			Description: "An infinite scrolling component for logos, testimonials and reviews.",
			Category:    CategoryLayout,
			Tags:        []string{"marquee", "scroll", "logos", "testimonials", "ticker"},
			Library:     LibraryMagicUI,
		},

		// Navigation
		{
			Key:           "navigation-menu",
			DisplayName:   "Navigation Menu",
			PackageName:   "@radix-ui/react-navigation-menu",
			ImportSnippet: `import { NavigationMenu, NavigationMenuItem, NavigationMenuLink, NavigationMenuList } from "@/components/ui/navigation-menu"`,
			UsageSnippet: `<NavigationMenu>
  <NavigationMenuList>
    <NavigationMenuItem>
      <NavigationMenuLink href="/docs">Documentation</NavigationMenuLink>
    </NavigationMenuItem>
  </NavigationMenuList>
</NavigationMenu>`,
			Description: "A collection of links for navigating websites, used for header navbars.",
			Category:    CategoryNavigation,
			Tags:        []string{"navbar", "header", "menu", "links"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "breadcrumb",
			DisplayName:   "Breadcrumb",
			PackageName:   "@radix-ui/react-slot",
			ImportSnippet: `import { Breadcrumb, BreadcrumbItem, BreadcrumbLink, BreadcrumbList, BreadcrumbPage, BreadcrumbSeparator } from "@/components/ui/breadcrumb"`,
			UsageSnippet: `<Breadcrumb>
  <BreadcrumbList>
    <BreadcrumbItem><BreadcrumbLink href="/">Home</BreadcrumbLink></BreadcrumbItem>
    <BreadcrumbSeparator />
    <BreadcrumbItem><BreadcrumbPage>Components</BreadcrumbPage></BreadcrumbItem>
  </BreadcrumbList>
</Breadcrumb>`,
			Description: "Displays the path to the current resource using a hierarchy of links.",
			Category:    CategoryNavigation,
			Tags:        []string{"breadcrumb", "path", "trail"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "pagination",
			DisplayName:   "Pagination",
			PackageName:   "react",
			ImportSnippet: `import { Pagination, PaginationContent, PaginationItem, PaginationLink, PaginationNext, PaginationPrevious } from "@/components/ui/pagination"`,
			UsageSnippet: `<Pagination>
  <PaginationContent>
    <PaginationItem><PaginationPrevious href="#" /></PaginationItem>
    <PaginationItem><PaginationLink href="#">1</PaginationLink></PaginationItem>
    <PaginationItem><PaginationNext href="#" /></PaginationItem>
  </PaginationContent>
</Pagination>`,
			Description: "Pagination with page navigation, next and previous links.",
			Category:    CategoryNavigation,
			Tags:        []string{"pagination", "pages", "paging"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "dropdown-menu",
			DisplayName:   "Dropdown Menu",
			PackageName:   "@radix-ui/react-dropdown-menu",
			ImportSnippet: `import { DropdownMenu, DropdownMenuContent, DropdownMenuItem, DropdownMenuTrigger } from "@/components/ui/dropdown-menu"`,
			UsageSnippet: `<DropdownMenu>
  <DropdownMenuTrigger>Open</DropdownMenuTrigger>
  <DropdownMenuContent>
    <DropdownMenuItem>Profile</DropdownMenuItem>
    <DropdownMenuItem>Billing</DropdownMenuItem>
  </DropdownMenuContent>
</DropdownMenu>`,
			Description: "Displays a menu to the user, such as a set of actions or functions, triggered by a button.",
			Category:    CategoryNavigation,
			Tags:        []string{"dropdown", "context menu", "actions"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "command",
			DisplayName:   "Command",
			PackageName:   "cmdk",
			ImportSnippet: `import { Command, CommandEmpty, CommandGroup, CommandInput, CommandItem, CommandList } from "@/components/ui/command"`,
			UsageSnippet: `<Command>
  <CommandInput placeholder="Type a command or search..." />
  <CommandList>
    <CommandEmpty>No results found.</CommandEmpty>
    <CommandGroup heading="Suggestions">
      <CommandItem>Calendar</CommandItem>
    </CommandGroup>
  </CommandList>
</Command>`,
			Description: "Fast, composable command menu for search and quick actions.",
			Category:    CategoryNavigation,
			Tags:        []string{"command palette", "search", "spotlight", "cmdk"},
			Library:     LibraryShadcn,
		},

		// Data
		{
			Key:           "table",
			DisplayName:   "Table",
			PackageName:   "react",
			ImportSnippet: `import { Table, TableBody, TableCell, TableHead, TableHeader, TableRow } from "@/components/ui/table"`,
			UsageSnippet: `<Table>
  <TableHeader>
    <TableRow><TableHead>Invoice</TableHead><TableHead>Amount</TableHead></TableRow>
  </TableHeader>
  <TableBody>
    <TableRow><TableCell>INV001</TableCell><TableCell>$250.00</TableCell></TableRow>
  </TableBody>
</Table>`,
			Description: "A responsive table component for tabular data.",
			Category:    CategoryData,
			Tags:        []string{"table", "rows", "columns", "grid data"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "data-table",
			DisplayName:   "Data Table",
			PackageName:   "@tanstack/react-table",
			ImportSnippet: `import { DataTable } from "@/components/ui/data-table"`,
			UsageSnippet:  `<DataTable columns={columns} data={payments} />`,
			Description:   "Powerful table and datagrids built using TanStack Table with sorting, filtering and pagination for dashboards.",
			Category:      CategoryData,
			Tags:          []string{"datagrid", "sorting", "filtering", "dashboard"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "chart",
			DisplayName:   "Chart",
			PackageName:   "recharts",
			ImportSnippet: `import { ChartContainer, ChartTooltip, ChartTooltipContent } from "@/components/ui/chart"`,
			UsageSnippet: `<ChartContainer config={chartConfig} className="min-h-[200px] w-full">
  <BarChart data={chartData}>
    <Bar dataKey="desktop" fill="var(--color-desktop)" radius={4} />
    <ChartTooltip content={<ChartTooltipContent />} />
  </BarChart>
</ChartContainer>`,
			Description: "Beautiful charts built using Recharts for analytics and dashboard views.",
			Category:    CategoryData,
			Tags:        []string{"chart", "graph", "analytics", "visualization"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "avatar",
			DisplayName:   "Avatar",
			PackageName:   "@radix-ui/react-avatar",
			ImportSnippet: `import { Avatar, AvatarFallback, AvatarImage } from "@/components/ui/avatar"`,
			UsageSnippet: `<Avatar>
  <AvatarImage src="https://github.com/shadcn.png" alt="@shadcn" />
  <AvatarFallback>CN</AvatarFallback>
</Avatar>`,
			Description: "An image element with a fallback for representing the user, common in testimonials and profiles.",
			Category:    CategoryData,
			Tags:        []string{"avatar", "profile", "user", "photo"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "badge",
			DisplayName:   "Badge",
			PackageName:   "class-variance-authority",
			ImportSnippet: `import { Badge } from "@/components/ui/badge"`,
			UsageSnippet:  `<Badge variant="secondary">New</Badge>`,
			Description:   "Displays a badge or a component that looks like a badge, for labels such as new or popular.",
			Category:      CategoryData,
			Tags:          []string{"badge", "tag", "chip", "pill", "label"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "calendar",
			DisplayName:   "Calendar",
			PackageName:   "react-day-picker",
			ImportSnippet: `import { Calendar } from "@/components/ui/calendar"`,
			UsageSnippet:  `<Calendar mode="single" selected={date} onSelect={setDate} className="rounded-md border" />`,
			Description:   "A date field component that allows users to enter and edit date.",
			Category:      CategoryData,
			Tags:          []string{"calendar", "date", "datepicker", "schedule"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "carousel",
			DisplayName:   "Carousel",
			PackageName:   "embla-carousel-react",
			ImportSnippet: `import { Carousel, CarouselContent, CarouselItem, CarouselNext, CarouselPrevious } from "@/components/ui/carousel"`,
			UsageSnippet: `<Carousel>
  <CarouselContent>
    <CarouselItem>...</CarouselItem>
    <CarouselItem>...</CarouselItem>
  </CarouselContent>
  <CarouselPrevious />
  <CarouselNext />
</Carousel>`,
			Description: "A carousel with motion and swipe built using Embla, for galleries and slideshows.",
			Category:    CategoryData,
			Tags:        []string{"carousel", "slider", "gallery", "slideshow"},
			Library:     LibraryShadcn,
		},

		// Feedback
		{
			Key:           "alert",
			DisplayName:   "Alert",
			PackageName:   "class-variance-authority",
			ImportSnippet: `import { Alert, AlertDescription, AlertTitle } from "@/components/ui/alert"`,
			UsageSnippet: `<Alert>
  <AlertTitle>Heads up!</AlertTitle>
  <AlertDescription>You can add components to your app using the cli.</AlertDescription>
</Alert>`,
			Description: "Displays a callout for user attention.",
			Category:    CategoryFeedback,
			Tags:        []string{"alert", "callout", "warning", "notice"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "dialog",
			DisplayName:   "Dialog",
			PackageName:   "@radix-ui/react-dialog",
			ImportSnippet: `import { Dialog, DialogContent, DialogDescription, DialogHeader, DialogTitle, DialogTrigger } from "@/components/ui/dialog"`,
			UsageSnippet: `<Dialog>
  <DialogTrigger>Open</DialogTrigger>
  <DialogContent>
    <DialogHeader>
      <DialogTitle>Are you absolutely sure?</DialogTitle>
      <DialogDescription>This action cannot be undone.</DialogDescription>
    </DialogHeader>
  </DialogContent>
</Dialog>`,
			Description: "A window overlaid on either the primary window or another dialog window, rendering the content underneath inert.",
			Category:    CategoryFeedback,
			Tags:        []string{"dialog", "overlay", "lightbox"},
			Library:     LibraryShadcn,
		},
		{
			Key:           "sonner",
			DisplayName:   "Sonner",
			PackageName:   "sonner",
			ImportSnippet: `import { toast } from "sonner"`,
			UsageSnippet:  `<Button onClick={() => toast("Event has been created.")}>Show Toast</Button>`,
			Description:   "An opinionated toast component for notifications.",
			Category:      CategoryFeedback,
			Tags:          []string{"toast", "notification", "snackbar"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "progress",
			DisplayName:   "Progress",
			PackageName:   "@radix-ui/react-progress",
			ImportSnippet: `import { Progress } from "@/components/ui/progress"`,
			UsageSnippet:  `<Progress value={33} />`,
			Description:   "Displays an indicator showing the completion progress of a task, typically displayed as a progress bar.",
			Category:      CategoryFeedback,
			Tags:          []string{"progress", "loading", "bar", "status"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "skeleton",
			DisplayName:   "Skeleton",
			PackageName:   "react",
			ImportSnippet: `import { Skeleton } from "@/components/ui/skeleton"`,
			UsageSnippet:  `<Skeleton className="h-4 w-[250px]" />`,
			Description:   "Use to show a placeholder while content is loading.",
			Category:      CategoryFeedback,
			Tags:          []string{"skeleton", "placeholder", "loading", "shimmer"},
			Library:       LibraryShadcn,
		},
		{
			Key:           "tooltip",
			DisplayName:   "Tooltip",
			PackageName:   "@radix-ui/react-tooltip",
			ImportSnippet: `import { Tooltip, TooltipContent, TooltipProvider, TooltipTrigger } from "@/components/ui/tooltip"`,
			UsageSnippet: `<TooltipProvider>
  <Tooltip>
    <TooltipTrigger>Hover</TooltipTrigger>
    <TooltipContent><p>Add to library</p></TooltipContent>
  </Tooltip>
</TooltipProvider>`,
			Description: "A popup that displays information related to an element when it receives keyboard focus or the mouse hovers over it.",
			Category:    CategoryFeedback,
			Tags:        []string{"tooltip", "hint", "hover"},
			Library:     LibraryShadcn,
		},

		// AI
		{
			Key:           "ai-chat",
			DisplayName:   "AI Chat",
			PackageName:   "ai",
			ImportSnippet: `import { Chat } from "@/components/ui/chat"`,
			UsageSnippet: `<Chat
  messages={messages}
  input={input}
  handleInputChange={handleInputChange}
  handleSubmit={handleSubmit}
  isGenerating={isLoading}
  stop={stop}
/>`,
			Description:      "A complete chat interface for AI assistants with message list, streaming responses and a prompt input.",
			Category:         CategoryAI,
			Tags:             []string{"chat", "assistant", "chatbot", "llm", "conversation"},
			Library:          LibraryShadcn,
			InstallCommand:   `npx shadcn@latest add "https://shadcn-chatbot-kit.vercel.app/r/chat.json"`,
			DocumentationURL: "https://shadcn-chatbot-kit.vercel.app/docs/components/chat",
		},
		{
			Key:           "placeholders-and-vanish-input",
			DisplayName:   "Placeholders And Vanish Input",
			PackageName:   "motion",
			ImportSnippet: `import { PlaceholdersAndVanishInput } from "@/components/ui/placeholders-and-vanish-input"`,
			UsageSnippet: `<PlaceholdersAndVanishInput
  placeholders={["Ask me anything", "Summarize this page"]}
  onChange={handleChange}
  onSubmit={onSubmit}
/>`,
			Description: "Sliding placeholders that vanish on submit, a prompt input for AI search and chat.",
			Category:    CategoryAI,
			Tags:        []string{"prompt", "ai input", "search bar", "vanish"},
			Library:     LibraryAceternity,
		},
		{
			Key:           "animated-list",
			DisplayName:   "Animated List",
			PackageName:   "motion",
			ImportSnippet: `import { AnimatedList } from "@/components/magicui/animated-list"`,
			UsageSnippet: `<AnimatedList>
  {notifications.map((item) => (
    <Notification {...item} key={item.name} />
  ))}
</AnimatedList>`,
			Description: "A list that animates each item in sequence with a delay, used to showcase agent activity and notifications.",
			Category:    CategoryAI,
			Tags:        []string{"activity feed", "agent", "stream", "notifications"},
			Library:     LibraryMagicUI,
		},

		// Advanced buttons
		{
			Key:           "glow-button",
			DisplayName:   "Glow Button",
			PackageName:   "motion",
			ImportSnippet: `import { GlowButton } from "@/components/magicui/glow-button"`,
			UsageSnippet:  `<GlowButton>Get Started</GlowButton>`,
			Description:   "A call to action button surrounded by a soft animated glow.",
			Category:      CategoryAdvancedButton,
			Tags:          []string{"glow", "cta", "animated button"},
			Library:       LibraryMagicUI,
		},
		{
			Key:           "shimmer-button",
			DisplayName:   "Shimmer Button",
			PackageName:   "motion",
			ImportSnippet: `import { ShimmerButton } from "@/components/magicui/shimmer-button"`,
			UsageSnippet:  `<ShimmerButton className="shadow-2xl">Shimmer Button</ShimmerButton>`,
			Description:   "A button with a shimmering light that travels around the perimeter.",
			Category:      CategoryAdvancedButton,
			Tags:          []string{"shimmer", "cta", "animated button"},
			Library:       LibraryMagicUI,
		},
		{
			Key:           "rainbow-button",
			DisplayName:   "Rainbow Button",
			PackageName:   "motion",
			ImportSnippet: `import { RainbowButton } from "@/components/magicui/rainbow-button"`,
			UsageSnippet:  `<RainbowButton>Get Unlimited Access</RainbowButton>`,
			Description:   "An animated button with a rainbow effect.",
			Category:      CategoryAdvancedButton,
			Tags:          []string{"rainbow", "gradient", "animated button"},
			Library:       LibraryMagicUI,
		},
		{
			Key:           "pulsating-button",
			DisplayName:   "Pulsating Button",
			PackageName:   "motion",
			ImportSnippet: `import { PulsatingButton } from "@/components/magicui/pulsating-button"`,
			UsageSnippet:  `<PulsatingButton>Join Affiliate Program</PulsatingButton>`,
			Description:   "An animated button with a pulsating effect that draws attention to the primary action.",
			Category:      CategoryAdvancedButton,
			Tags:          []string{"pulse", "attention", "animated button"},
			Library:       LibraryMagicUI,
		},

		// Text
		{
			Key:           "animated-gradient-text",
			DisplayName:   "Animated Gradient Text",
			PackageName:   "motion",
			ImportSnippet: `import { AnimatedGradientText } from "@/components/magicui/animated-gradient-text"`,
			UsageSnippet:  `<AnimatedGradientText>Introducing Magic UI</AnimatedGradientText>`,
			Description:   "An animated gradient background which transitions between colors for text, great for hero announcements.",
			Category:      CategoryText,
			Tags:          []string{"gradient", "headline", "announcement", "hero text"},
			Library:       LibraryMagicUI,
		},
		{
			Key:           "typing-animation",
			DisplayName:   "Typing Animation",
			PackageName:   "motion",
			ImportSnippet: `import { TypingAnimation } from "@/components/magicui/typing-animation"`,
			UsageSnippet:  `<TypingAnimation>Typing Animation</TypingAnimation>`,
			Description:   "Characters appearing in typed animation.",
			Category:      CategoryText,
			Tags:          []string{"typewriter", "typing", "text effect"},
			Library:       LibraryMagicUI,
		},
		{
			Key:           "word-rotate",
			DisplayName:   "Word Rotate",
			PackageName:   "motion",
			ImportSnippet: `import { WordRotate } from "@/components/magicui/word-rotate"`,
			UsageSnippet:  `<WordRotate words={["Word", "Rotate"]} />`,
			Description:   "A vertical rotation of words for dynamic headline text.",
			Category:      CategoryText,
			Tags:          []string{"rotate", "headline", "text effect"},
			Library:       LibraryMagicUI,
		},
		{
			Key:           "number-ticker",
			DisplayName:   "Number Ticker",
			PackageName:   "motion",
			ImportSnippet: `import { NumberTicker } from "@/components/magicui/number-ticker"`,
			UsageSnippet:  `<NumberTicker value={100} />`,
			Description:   "Animate numbers to count up or down to a target number, for stats and metrics.",
			Category:      CategoryText,
			Tags:          []string{"counter", "stats", "metrics", "numbers"},
			Library:       LibraryMagicUI,
		},
		{
			Key:           "text-generate-effect",
			DisplayName:   "Text Generate Effect",
			PackageName:   "motion",
			ImportSnippet: `import { TextGenerateEffect } from "@/components/ui/text-generate-effect"`,
			UsageSnippet:  `<TextGenerateEffect words="Oxygen gets you high." />`,
			Description:   "A cool text effect that fades in text on page load, one word at a time.",
			Category:      CategoryText,
			Tags:          []string{"fade in", "reveal", "text effect"},
			Library:       LibraryAceternity,
		},
	}
}

// builtinAliases maps common synonyms to canonical component keys.
func builtinAliases() map[string]string {
	return map[string]string{
		"btn":             "button",
		"modal":           "dialog",
		"popup":           "dialog",
		"toast":           "sonner",
		"notification":    "sonner",
		"dropdown":        "dropdown-menu",
		"nav":             "navigation-menu",
		"navbar":          "navigation-menu",
		"menu":            "navigation-menu",
		"textbox":         "input",
		"text-field":      "input",
		"text-input":      "input",
		"drawer":          "sheet",
		"sidebar":         "sheet",
		"datagrid":        "data-table",
		"graph":           "chart",
		"spinner":         "skeleton",
		"loader":          "skeleton",
		"chip":            "badge",
		"toggle":          "switch",
		"datepicker":      "calendar",
		"date-picker":     "calendar",
		"slideshow":       "carousel",
		"faq":             "accordion",
		"chatbot":         "ai-chat",
		"chat":            "ai-chat",
		"ticker":          "marquee",
		"typewriter":      "typing-animation",
		"counter":         "number-ticker",
		"command-palette": "command",
	}
}
